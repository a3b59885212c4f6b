package render

import (
	"io"
	"sort"
	"strings"

	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
)

// ClassOptions parameterize the generated Java classes.
type ClassOptions struct {
	ClassName string
	Package   string // empty means no package declaration
}

// SettingsClass writes the settings accessor class: one key constant per
// preference (plus any hidden keys), an enum per enum-backed list, and typed
// getter/setter pairs over a wrapped SharedPreferences handle. Enum-backed
// lists store the ordinal as a string-encoded integer and convert at the
// accessor boundary.
func SettingsClass(w io.Writer, doc *prefdoc.Document, opts ClassOptions) error {
	e := &emitter{w: w}
	e.printf("// Generated by prefgen - Do not edit by hand!\n\n")
	if opts.Package != "" {
		e.printf("package %s;\n\n", opts.Package)
	}
	e.printf("import android.content.SharedPreferences;\n\n")
	e.printf("public class %s {\n", opts.ClassName)

	var leaves []*prefdoc.Item
	for _, it := range doc.Linear {
		if it.IsLeaf() {
			leaves = append(leaves, it)
		}
	}

	keys := append([]string{}, doc.Keys...)
	for _, it := range leaves {
		keys = append(keys, it.Key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		e.printf("    public static final String %s = \"%s\";\n", keyConstant(key), key)
	}

	for _, it := range leaves {
		if len(it.EnumValues) == 0 {
			continue
		}
		e.printf("    public enum %s {\n", it.EnumName)
		for _, ev := range it.EnumValues {
			e.printf("        %s,\n", ev)
		}
		e.printf("    }\n")
	}

	e.printf("    private SharedPreferences mPreferences;\n\n")
	e.printf("    public %s(SharedPreferences preferences) {\n", opts.ClassName)
	e.printf("        mPreferences = preferences;\n")
	e.printf("    }\n\n")
	e.printf("    public SharedPreferences getPreferences() {\n")
	e.printf("        return mPreferences;\n")
	e.printf("    }\n\n")
	e.printf("    public int getInt(String key, int def) {\n")
	e.printf("        return mPreferences.getInt(key, def);\n")
	e.printf("    }\n\n")
	e.printf("    public void putInt(String key, int value) {\n")
	e.printf("        mPreferences.edit().putInt(key, value).commit();\n")
	e.printf("    }\n\n")
	e.printf("    public boolean getBoolean(String key, boolean def) {\n")
	e.printf("        return mPreferences.getBoolean(key, def);\n")
	e.printf("    }\n\n")
	e.printf("    public boolean getBoolean(String key) { return getBoolean(key, false); }\n\n")
	e.printf("    public void putBoolean(String key, boolean value) {\n")
	e.printf("        mPreferences.edit().putBoolean(key, value).commit();\n")
	e.printf("    }\n\n")
	e.printf("    public String getString(String key, String def) {\n")
	e.printf("        return mPreferences.getString(key, def);\n")
	e.printf("    }\n\n")
	e.printf("    public String getString(String key) { return getString(key, \"\"); }\n\n")
	e.printf("    public void putString(String key, String value) {\n")
	e.printf("        mPreferences.edit().putString(key, value).commit();\n")
	e.printf("    }\n\n")
	e.printf("    private int getEnumInt(String key, int def) {\n")
	e.printf("        return Integer.parseInt(getString(key, String.valueOf(def)));\n")
	e.printf("    }\n\n")
	e.printf("    private void putEnumInt(String key, int value) {\n")
	e.printf("        putString(key, String.valueOf(value));\n")
	e.printf("    }\n\n")

	for _, it := range leaves {
		javaType, methodType, ok := accessorTypes(it)
		if !ok {
			continue
		}
		isEnum := len(it.EnumValues) > 0
		methodKey := strings.ReplaceAll(it.Key, ".", "_")
		keyName := "PREF_" + strings.ToUpper(methodKey)

		def := it.DefaultValue
		if methodType == "String" && !strings.HasPrefix(def, "\"") {
			def = "\"" + def + "\""
		}

		call := "get" + methodType + "(" + keyName + ", " + def + ")"
		if isEnum {
			call = it.EnumName + ".values()[" + call + "]"
		}
		e.printf("    public %s %s() {\n", javaType, prefdoc.MakeVar("get_"+methodKey, true))
		e.printf("        return %s;\n", call)
		e.printf("    }\n\n")

		convert := ""
		if isEnum {
			convert = ".ordinal()"
		}
		e.printf("    public void %s(%s value) {\n", prefdoc.MakeVar("set_"+methodKey, true), javaType)
		e.printf("        put%s(%s, value%s);\n", methodType, keyName, convert)
		e.printf("    }\n\n")
	}

	e.printf("}\n")
	return e.finish("settings class")
}

// keyConstant derives the PREF_ constant name from a preference key.
func keyConstant(key string) string {
	return "PREF_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// accessorTypes maps a leaf type to its Java value type and the get/put
// method suffix used by the generated accessors.
func accessorTypes(it *prefdoc.Item) (javaType, methodType string, ok bool) {
	switch it.Type {
	case prefdoc.TypeText:
		return "String", "String", true
	case prefdoc.TypeCheckBox:
		return "boolean", "Boolean", true
	case prefdoc.TypeList:
		if len(it.EnumValues) > 0 {
			return it.EnumName, "EnumInt", true
		}
		return "String", "String", true
	}
	return "", "", false
}
