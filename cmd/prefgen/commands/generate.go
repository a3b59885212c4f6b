package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/prefgen/internal/config"
	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
	"git.home.luguber.info/inful/prefgen/internal/render"
)

// GenerateCmd implements the 'generate' command: parse once, then run each
// requested render pass independently.
type GenerateCmd struct {
	Input    string `arg:"" optional:"" help:"Input settings document (or set 'input' in the project file)"`
	Layout   string `help:"Preference layout XML output path" type:"path"`
	Resource string `help:"String resource XML output path" type:"path"`
	Settings string `help:"Settings accessor class output path" type:"path"`
	Activity string `help:"Activity class output path" type:"path"`
	Package  string `short:"p" help:"Package for generated classes; 'settings.pkg,activity.pkg' targets them separately"`
}

// genOptions is the fully resolved generation request, after merging CLI
// flags with the optional project file (flags win).
type genOptions struct {
	input       string
	layout      string
	resource    string
	settings    string
	activity    string
	settingsPkg string
	activityPkg string
}

// Run executes the generate command.
func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	opts, err := g.resolve(root.Config)
	if err != nil {
		return err
	}
	return generateAll(opts)
}

// resolve merges flags with the project file and validates the request.
func (g *GenerateCmd) resolve(configPath string) (*genOptions, error) {
	o := &genOptions{
		input:    g.Input,
		layout:   g.Layout,
		resource: g.Resource,
		settings: g.Settings,
		activity: g.Activity,
	}
	o.settingsPkg, o.activityPkg = splitPackages(g.Package)

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		fill(&o.input, cfg.Input)
		fill(&o.layout, cfg.Outputs.Layout)
		fill(&o.resource, cfg.Outputs.Resource)
		fill(&o.settings, cfg.Outputs.Settings)
		fill(&o.activity, cfg.Outputs.Activity)
		fill(&o.settingsPkg, cfg.Packages.Settings)
		fill(&o.activityPkg, cfg.Packages.Activity)
	}

	if o.input == "" {
		return nil, xerrors.UsageError("no input document: pass it as an argument or set 'input' in the project file")
	}
	if o.layout == "" && o.resource == "" && o.settings == "" && o.activity == "" {
		return nil, xerrors.UsageError("no outputs requested: pass --layout, --resource, --settings or --activity, or configure them in the project file")
	}
	return o, nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

// splitPackages splits the --package value into settings and activity
// package names. A single name targets both classes.
func splitPackages(p string) (settingsPkg, activityPkg string) {
	if p == "" {
		return "", ""
	}
	if s, a, ok := strings.Cut(p, ","); ok {
		return strings.TrimSpace(s), strings.TrimSpace(a)
	}
	return p, p
}

// generateAll parses the input document once and writes every configured
// output. A failure mid-render is fatal and leaves the file incomplete; this
// is a batch tool with no rollback.
func generateAll(o *genOptions) error {
	doc, err := prefdoc.ParseFile(o.input)
	if err != nil {
		return err
	}
	slog.Debug("parsed settings document",
		"input", o.input, "items", len(doc.Linear), "strings", len(doc.Strings))

	if o.layout != "" {
		err := writeOutput(o.layout, "layout", func(w io.Writer) error {
			return render.Layout(w, doc)
		})
		if err != nil {
			return err
		}
	}

	if o.resource != "" {
		err := writeOutput(o.resource, "string resources", func(w io.Writer) error {
			return render.Resources(w, doc)
		})
		if err != nil {
			return err
		}
	}

	if o.settings != "" {
		opts := render.ClassOptions{
			ClassName: classNameFromPath(o.settings),
			Package:   o.settingsPkg,
		}
		err := writeOutput(o.settings, "settings class", func(w io.Writer) error {
			return render.SettingsClass(w, doc, opts)
		})
		if err != nil {
			return err
		}
	}

	if o.activity != "" {
		opts := render.ActivityOptions{
			ClassName:       classNameFromPath(o.activity),
			Package:         o.activityPkg,
			ResourcePackage: o.settingsPkg,
			LayoutResource:  layoutResourceName(o.layout),
		}
		err := writeOutput(o.activity, "activity class", func(w io.Writer) error {
			return render.ActivityClass(w, opts)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// writeOutput opens path for the duration of one render pass.
func writeOutput(path, what string, renderTo func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Wrap(err, xerrors.CategoryFileSystem, xerrors.SeverityFatal,
			fmt.Sprintf("cannot open %s output %s", what, path))
	}
	if err := renderTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return xerrors.Wrap(err, xerrors.CategoryFileSystem, xerrors.SeverityFatal,
			fmt.Sprintf("closing %s output %s", what, path))
	}
	slog.Info("Generated "+what, "path", path)
	return nil
}

// classNameFromPath derives the generated class name from the output file
// base name, e.g. src/com/app/Settings.java -> Settings.
func classNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// layoutResourceName derives the R.xml entry referenced by the activity
// class from the layout output path, defaulting to "settings" when the
// layout is not generated in this run.
func layoutResourceName(layoutPath string) string {
	if layoutPath == "" {
		return "settings"
	}
	return strings.ToLower(classNameFromPath(layoutPath))
}
