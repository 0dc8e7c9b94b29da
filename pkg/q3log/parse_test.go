package q3log_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/q3log/q3log-go/pkg/q3log"
)

const sampleLog = ` 26  0:00 ------------------------------
0:00 InitGame: \sv_hostname\Code Miner Server\g_gametype\0
0:01 ClientConnect: 2
0:02 ClientUserinfoChanged: 2 n\Isgalamido\t\0\model\xian/default
0:03 ClientBegin: 2
0:04 Item: 2 weapon_rocketlauncher
0:05 Kill: 2 2 3: Isgalamido killed Mocinha by MOD_ROCKET_SPLASH
0:06 Kill: 1022 2 22: <world> killed Isgalamido by MOD_TRIGGER_HURT
this line is engine noise without a timestamp
0:07 Exit: Timelimit hit.
0:08 ShutdownGame:
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	logFile := filepath.Join(dir, "games.log")
	if err := os.WriteFile(logFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return logFile
}

func TestParseFile_Basic(t *testing.T) {
	logFile := writeLog(t, sampleLog)

	ctx := context.Background()
	var events []q3log.Event

	for ev, err := range q3log.ParseFile(ctx, logFile) {
		if err != nil {
			t.Fatalf("ParseFile error: %v", err)
		}
		events = append(events, ev)
	}

	// Separator and noise lines are skipped; 9 event lines remain.
	if len(events) != 9 {
		t.Fatalf("got %d events, want 9", len(events))
	}

	wantKinds := []q3log.ActionKind{
		q3log.KindInitGame,
		q3log.KindClientConnect,
		q3log.KindClientUserinfoChanged,
		q3log.KindClientBegin,
		q3log.KindItem,
		q3log.KindKill,
		q3log.KindKill,
		q3log.KindOther,
		q3log.KindShutdownGame,
	}
	for i, want := range wantKinds {
		if events[i].Kind() != want {
			t.Errorf("event %d: kind = %q, want %q", i, events[i].Kind(), want)
		}
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	ctx := context.Background()
	var errCount int

	for _, err := range q3log.ParseFile(ctx, "") {
		if err != nil {
			errCount++
			break
		}
	}

	if errCount != 1 {
		t.Error("ParseFile with empty path should yield an error")
	}
}

func TestParseFile_FileNotFound(t *testing.T) {
	ctx := context.Background()
	var errCount int

	for _, err := range q3log.ParseFile(ctx, "/nonexistent/games.log") {
		if err != nil {
			errCount++
			break
		}
	}

	if errCount != 1 {
		t.Error("ParseFile with nonexistent file should yield an error")
	}
}

func TestParseFile_WithIncludeKinds(t *testing.T) {
	logFile := writeLog(t, sampleLog)

	ctx := context.Background()
	var events []q3log.Event

	for ev, err := range q3log.ParseFile(ctx, logFile,
		q3log.WithParseIncludeKinds(q3log.KindKill),
	) {
		if err != nil {
			t.Fatalf("ParseFile error: %v", err)
		}
		events = append(events, ev)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for i, ev := range events {
		if ev.Kind() != q3log.KindKill {
			t.Errorf("event %d: kind = %q, want kill", i, ev.Kind())
		}
	}
}

func TestParseFile_WithIncludeRawLine(t *testing.T) {
	logFile := writeLog(t, "0:01 ClientConnect: 2\n")

	ctx := context.Background()
	for ev, err := range q3log.ParseFile(ctx, logFile,
		q3log.WithParseIncludeRawLine(true),
	) {
		if err != nil {
			t.Fatalf("ParseFile error: %v", err)
		}
		if ev.RawLine != "0:01 ClientConnect: 2" {
			t.Errorf("RawLine = %q", ev.RawLine)
		}
	}
}

func TestParseFileAll(t *testing.T) {
	logFile := writeLog(t, sampleLog)

	events, err := q3log.ParseFileAll(context.Background(), logFile)
	if err != nil {
		t.Fatalf("ParseFileAll() error = %v", err)
	}
	if len(events) != 9 {
		t.Errorf("got %d events, want 9", len(events))
	}
}

func TestAnalyzeFile(t *testing.T) {
	logFile := writeLog(t, sampleLog)

	seg, err := q3log.AnalyzeFile(context.Background(), logFile)
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}

	games := seg.Games()
	if len(games) != 1 {
		t.Fatalf("len(Games()) = %d, want 1", len(games))
	}

	game := games[0]
	if !game.Completed {
		t.Error("game not marked completed")
	}
	if len(game.Events) != 9 {
		t.Errorf("game has %d events, want 9", len(game.Events))
	}

	players := game.Players()
	if got := players[2]; got != "Isgalamido" {
		t.Errorf("players[2] = %q, want Isgalamido", got)
	}

	if got := len(game.Kills()); got != 2 {
		t.Errorf("len(Kills()) = %d, want 2", got)
	}
	if got := game.Killers["Isgalamido"]; got != 1 {
		t.Errorf("Killers[Isgalamido] = %d, want 1", got)
	}
	if got := seg.KillsByMeans()["MOD_TRIGGER_HURT"]; got != 1 {
		t.Errorf("overall MOD_TRIGGER_HURT = %d, want 1", got)
	}
}

func TestAnalyzeFile_NoEvents(t *testing.T) {
	// A file with no recognizable events yields zero games, not an error.
	logFile := writeLog(t, "engine chatter\n\nmore chatter\n")

	seg, err := q3log.AnalyzeFile(context.Background(), logFile)
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	if len(seg.Games()) != 0 {
		t.Errorf("len(Games()) = %d, want 0", len(seg.Games()))
	}
	if len(seg.KillsByMeans()) != 0 || len(seg.Killers()) != 0 {
		t.Error("expected empty overall maps")
	}
}

func TestAnalyzeFile_Missing(t *testing.T) {
	_, err := q3log.AnalyzeFile(context.Background(), "/nonexistent/games.log")
	if err == nil {
		t.Error("AnalyzeFile() expected error for missing file")
	}
}
