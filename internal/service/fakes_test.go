package service

import (
	"context"
	"errors"

	"leafscan/internal/models"
)

type fakeDelegate struct {
	name    string
	reply   string
	err     error
	calls   int
	history []models.ChatTurn
}

func (d *fakeDelegate) Name() string  { return d.name }
func (d *fakeDelegate) Model() string { return d.name + "-model" }

func (d *fakeDelegate) Generate(_ context.Context, _ string, history []models.ChatTurn) (string, error) {
	d.calls++
	d.history = history
	return d.reply, d.err
}

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

var errBoom = errors.New("boom")
