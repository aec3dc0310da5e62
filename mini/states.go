// Package mini implements a lightweight, prompt-driven settings editor for dumb terminals.
package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dstweak-cli/dstweak/filesystem"
	"github.com/dstweak-cli/dstweak/history"
	"github.com/dstweak-cli/dstweak/key"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/spf13/viper"
)

type state int

const (
	gameLoadState state = iota + 1
	fieldSelectState
	valueSelectState
	saveState
	quitState
)

const (
	saveOption    = "Save & exit"
	discardOption = "Discard & exit"
)

func (m *mini) handleGameLoadState() error {
	path := m.options.Path

	if m.options.Continue {
		latest, ok, err := history.Latest()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no games were edited yet")
		}

		path = latest.Path
	}

	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s does not exist", path)
	}

	erase := progress("Reading game..")
	m.info = title.Classify(path)
	m.overrides = settings.Load(m.info.Key)
	m.ctx = settings.NewContext(m.info)
	erase()

	if viper.GetBool(key.HistorySaveOnEdit) {
		if err := history.Save(m.info); err != nil {
			log.Warnf("failed to remember %s: %v", m.info.Key, err)
		}
	}

	name := m.info.Name
	if name == "" {
		name = m.info.Key
	}
	header(name)

	if len(settings.Visible(m.ctx)) == 0 {
		fail("This game keeps no editable settings on the configured console")
		m.newState(quitState)
		return nil
	}

	m.newState(fieldSelectState)
	return nil
}

func (m *mini) handleFieldSelectState() error {
	fields := settings.Visible(m.ctx)

	options := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		options = append(options, m.fieldOption(f))
	}
	options = append(options, saveOption)
	if m.dirty {
		options = append(options, discardOption)
	}

	prompt := &survey.Select{
		Message:  "Field to change:",
		Options:  options,
		PageSize: len(options),
	}

	var choice int
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	switch choice {
	case len(fields):
		m.newState(saveState)
	case len(fields) + 1:
		m.newState(quitState)
	default:
		m.selectedField = fields[choice]
		m.newState(valueSelectState)
	}

	return nil
}

func (m *mini) handleValueSelectState() error {
	f := m.selectedField

	if settings.Locked(f, m.overrides, m.ctx) {
		fail(fmt.Sprintf("%s is locked while the game runs in DSi mode", f.Label()))
		m.previousState()
		return nil
	}

	domain := f.Domain()
	options := make([]string, 0, len(domain))
	for _, v := range domain {
		options = append(options, f.ValueLabel(v))
	}

	current := m.overrides.Working(f, m.ctx)
	prompt := &survey.Select{
		Message:  f.Label() + ":",
		Options:  options,
		Default:  f.ValueLabel(current),
		PageSize: len(options),
	}

	var choice int
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	value := domain[choice]
	if value != current {
		if s, ok := f.Sentinel(); ok && value == s {
			m.overrides.Unset(f)
		} else {
			m.overrides.Set(f, value)
		}
		m.dirty = true
	}

	m.previousState()
	return nil
}

func (m *mini) handleSaveState() error {
	if !m.dirty {
		m.newState(quitState)
		return nil
	}

	erase := progress("Saving..")
	err := settings.Save(m.info.Key, m.overrides, m.ctx)
	erase()
	if err != nil {
		return err
	}

	success(fmt.Sprintf("Saved settings of %s", style.Bold(m.info.Key)))
	m.newState(quitState)
	return nil
}

// fieldOption renders a field with its working value for the selection menu.
func (m *mini) fieldOption(f settings.Field) string {
	value := f.ValueLabel(m.overrides.Working(f, m.ctx))
	if settings.Locked(f, m.overrides, m.ctx) {
		value = f.ValueLabel(settings.EffectiveValue(f, m.overrides, m.ctx)) + ", locked"
	}

	return fmt.Sprintf("%s [%s]", f.Label(), value)
}
