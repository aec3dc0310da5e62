// Package inline implements the non-interactive, machine-readable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/dstweak-cli/dstweak/hardware"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/invopop/jsonschema"
)

// Output is the machine-readable shape printed for a game: its identity, the
// console capabilities it was resolved against, the stored overrides and the
// values the game would boot with.
type Output struct {
	Game            title.Info            `json:"game"`
	Capabilities    hardware.Capabilities `json:"capabilities"`
	SecondaryDevice bool                  `json:"secondary_device"`
	Overrides       settings.Overrides    `json:"overrides"`
	Resolved        settings.Resolved     `json:"resolved"`
	ShowAPNotice    bool                  `json:"show_ap_notice"`
}

func writeJson(out io.Writer, output *Output) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}

// Schema writes the JSON schema of the inline output shape, so scripts can
// validate what they consume.
func Schema(out io.Writer) error {
	data, err := json.MarshalIndent(jsonschema.Reflect(&Output{}), "", "  ")
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
