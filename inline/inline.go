// Package inline implements the non-interactive, machine-readable execution mode.
package inline

import (
	"fmt"
	"os"

	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/title"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	exists, err := filesystem.API().Exists(options.Path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s does not exist", options.Path)
	}

	info := title.Classify(options.Path)
	overrides := settings.Load(info.Key)
	ctx := settings.NewContext(info)

	output := &Output{
		Game:            info,
		Capabilities:    ctx.Caps,
		SecondaryDevice: ctx.SecondaryDevice,
		Overrides:       overrides,
		Resolved:        settings.Resolve(overrides, ctx),
		ShowAPNotice:    settings.ShouldShowAPNotice(info.Key),
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	for _, f := range settings.Visible(ctx) {
		value := settings.EffectiveValue(f, overrides, ctx)
		fmt.Fprintf(options.Out, "%s = %s\n", f.Name(), f.ValueLabel(value))
	}

	return nil
}
