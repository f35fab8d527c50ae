package service

import (
	"context"
	"errors"

	"disaster-chatbot-be/pkg/llm"
)

// nopLogger discards everything; service tests assert on behavior, not logs.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// recordingLLM replays a canned reply (or failure) and records what it was
// asked, so tests can inspect the assembled prompt and history.
type recordingLLM struct {
	reply string
	err   error

	chatCalls     int
	generateCalls int
	lastHistory   []llm.Message
	lastPrompt    string
}

func (f *recordingLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.chatCalls++
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *recordingLLM) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.generateCalls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var errProviderDown = errors.New("connection refused")
