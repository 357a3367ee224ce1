package logger

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatterFieldOrderingAndSkipping(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "component and sorted fields",
			data: logrus.Fields{
				"component":  "events",
				"caller":     "x.go:1",
				"ui_events":  3,
				"console_id": "c1",
			},
			message: "drained queues on shutdown",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [events] drained queues on shutdown console_id=c1 ui_events=3\n",
		},
		{
			name: "no component no fields",
			data: logrus.Fields{
				"caller": "x.go:1",
			},
			message: "hello",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] hello\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
		})
	}
}

func TestNamedAttachesComponent(t *testing.T) {
	entry := Named("console")
	if got, ok := entry.Data["component"].(string); !ok || got != "console" {
		t.Fatalf("Named component = %v", entry.Data["component"])
	}
}

func TestShortenFilePath(t *testing.T) {
	cases := map[string]string{
		"/home/u/src/conbox/internal/events/waiter.go": "internal/events/waiter.go",
		"/home/u/src/conbox/cmd/conbox/main.go":        "cmd/conbox/main.go",
		"waiter.go": "waiter.go",
	}
	for in, want := range cases {
		if got := shortenFilePath(in); got != want {
			t.Fatalf("shortenFilePath(%q) = %q, want %q", in, got, want)
		}
	}
}
