package main

import (
	"errors"
	"testing"

	"github.com/q3log/q3log-go/internal/config"
	"github.com/q3log/q3log-go/pkg/q3log"
)

func TestResolveLogFile(t *testing.T) {
	setupConfigEnv(t)

	tests := []struct {
		name      string
		args      []string
		flagValue string
		cfg       config.Config
		want      string
	}{
		{
			name:      "positional arg wins",
			args:      []string{"/from/args.log"},
			flagValue: "/from/flag.log",
			cfg:       config.Config{LogFile: "/from/config.log"},
			want:      "/from/args.log",
		},
		{
			name:      "flag beats config",
			flagValue: "/from/flag.log",
			cfg:       config.Config{LogFile: "/from/config.log"},
			want:      "/from/flag.log",
		},
		{
			name: "config beats auto-detection",
			cfg:  config.Config{LogFile: "/from/config.log"},
			want: "/from/config.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLogFile(tt.args, tt.flagValue, tt.cfg)
			if err != nil {
				t.Fatalf("resolveLogFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveLogFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveLogFile_NothingFound(t *testing.T) {
	setupConfigEnv(t)

	_, err := resolveLogFile(nil, "", config.Config{})
	if err == nil {
		t.Fatal("resolveLogFile() expected error with no sources")
	}
	if !errors.Is(err, q3log.ErrLogFileNotFound) {
		t.Errorf("resolveLogFile() error = %v, want %v", err, q3log.ErrLogFileNotFound)
	}
}
