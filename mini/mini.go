// Package mini implements a lightweight, prompt-driven settings editor for dumb terminals.
package mini

import (
	"fmt"

	"github.com/dstweak-cli/dstweak/icon"
	"github.com/dstweak-cli/dstweak/settings"
	"github.com/dstweak-cli/dstweak/style"
	"github.com/dstweak-cli/dstweak/title"
	"github.com/dstweak-cli/dstweak/util"
	"github.com/samber/lo"
)

type Options struct {
	// Path of the game to edit. Empty requires Continue.
	Path string

	// Continue reopens the most recently edited game.
	Continue bool
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	info      title.Info
	ctx       settings.Context
	overrides settings.Overrides

	selectedField settings.Field
	dirty         bool

	options *Options
}

func newMini(options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		options:       options,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{gameLoadState, saveState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini(options)
	m.state = gameLoadState

	for {
		if err := m.handleState(); err != nil {
			return err
		}

		if m.state == quitState {
			return nil
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case gameLoadState:
		return m.handleGameLoadState()
	case fieldSelectState:
		return m.handleFieldSelectState()
	case valueSelectState:
		return m.handleValueSelectState()
	case saveState:
		return m.handleSaveState()
	}

	return nil
}

func header(s string) {
	fmt.Println(style.Title(s))
}

func progress(s string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), s))
}

func fail(s string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Cross), s)
}

func success(s string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Check), s)
}
