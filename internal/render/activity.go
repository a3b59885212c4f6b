package render

import (
	"io"
)

// ActivityOptions parameterize the generated activity class.
type ActivityOptions struct {
	ClassName string
	Package   string // activity package; empty means no package declaration
	// ResourcePackage qualifies the R class reference, normally the
	// settings class package when the two differ.
	ResourcePackage string
	// LayoutResource is the R.xml entry name of the generated layout.
	LayoutResource string
}

// ActivityClass writes the preference activity boilerplate: it binds the
// generated layout resource and wires the resume/pause lifecycle pair to
// register and unregister a preference change listener.
func ActivityClass(w io.Writer, opts ActivityOptions) error {
	e := &emitter{w: w}

	layout := opts.LayoutResource
	if layout == "" {
		layout = "settings"
	}
	resPackage := ""
	if opts.ResourcePackage != "" {
		resPackage = opts.ResourcePackage + "."
	}

	e.printf("// Generated by prefgen - Do not edit by hand!\n\n")
	if opts.Package != "" {
		e.printf("package %s;\n\n", opts.Package)
	}
	e.printf("import android.content.SharedPreferences;\n\n")
	e.printf("public class %s extends android.preference.PreferenceActivity\n", opts.ClassName)
	e.printf("        implements SharedPreferences.OnSharedPreferenceChangeListener {\n\n")
	e.printf("    public %s() {\n        super();\n    }\n\n", opts.ClassName)
	e.printf("    @Override\n")
	e.printf("    protected void onCreate(android.os.Bundle savedInstanceState) {\n")
	e.printf("        super.onCreate(savedInstanceState);\n")
	e.printf("        addPreferencesFromResource(%sR.xml.%s);\n", resPackage, layout)
	e.printf("    }\n\n")
	e.printf("    @Override\n")
	e.printf("    public void onSharedPreferenceChanged(SharedPreferences p, String k) { }\n\n")
	e.printf("    protected SharedPreferences getPreferences() {\n")
	e.printf("        return getPreferenceScreen().getSharedPreferences();\n")
	e.printf("    }\n\n")
	writeLifecycleHook(e, "Resume", "register")
	writeLifecycleHook(e, "Pause", "unregister")
	e.printf("}\n")

	return e.finish("activity class")
}

func writeLifecycleHook(e *emitter, hook, method string) {
	e.printf("    @Override\n    protected void on%s() {\n        super.on%s();\n", hook, hook)
	e.printf("        getPreferences().%sOnSharedPreferenceChangeListener(this);\n    }\n", method)
}
