package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/gosuda/brewin/config"
	bruntime "github.com/gosuda/brewin/runtime"
)

type appConfig struct {
	path  string
	lines []string
	cfg   *config.Config
	log   zerolog.Logger
}

type vmStartedMsg struct {
	events <-chan tea.Msg
}

type vmOutputMsg struct {
	out bruntime.Output
}

type vmDoneMsg struct {
	err error
}

type vmPromptMsg struct {
	prompt string
	resp   chan string
}

type vmPollMsg struct{}

type pendingInput struct {
	prompt string
	resp   chan string
}
