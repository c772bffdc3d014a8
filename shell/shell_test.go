package shell

import (
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/matryer/is"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/config"
)

// newTestController builds a controller without a readline instance;
// handlers only need the board and config.
func newTestController(t *testing.T) *ShellController {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Load(nil); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set(config.ConfigVerbose, "false"); err != nil {
		t.Fatal(err)
	}
	return &ShellController{cfg: cfg, b: board.New()}
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /tmp/selfplay.txt",
			&shellcmd{"autoplay", nil, CmdOptions{"file": {"/tmp/selfplay.txt"}}},
			nil},
		{"solve 6 5000",
			&shellcmd{"solve", []string{"6", "5000"}, CmdOptions{}},
			nil},
		{"autoplay -depth 4 -time 2000 ",
			&shellcmd{"autoplay", nil, CmdOptions{"depth": {"4"}, "time": {"2000"}}},
			nil},
		{`load "h9:1|p1:1,2|p2:3|turn:2"`,
			&shellcmd{"load", []string{"h9:1|p1:1,2|p2:3|turn:2"}, CmdOptions{}},
			nil},
		{"autoplay -file", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestCmdOptionsHelpers(t *testing.T) {
	is := is.New(t)
	opts := CmdOptions{"depth": {"6"}, "file": {"/tmp/x"}}

	is.Equal(opts.String("file"), "/tmp/x")
	is.Equal(opts.String("missing"), "")

	d, err := opts.IntDefault("depth", 3)
	is.NoErr(err)
	is.Equal(d, 6)

	d, err = opts.IntDefault("missing", 3)
	is.NoErr(err)
	is.Equal(d, 3)

	_, err = opts.IntDefault("file", 3)
	is.True(err != nil)
}

func TestPlayAndUndo(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.play(&shellcmd{cmd: "play", args: []string{"h4:5"}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Player 2 to move"))
	is.Equal(len(sc.history), 1)

	resp, err = sc.undo()
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "took back h4:5"))
	is.Equal(len(sc.history), 0)
	is.Equal(sc.b.SavePosition(), board.StartPosition)

	_, err = sc.undo()
	is.True(err != nil)
}

func TestPlayRejectsBadMoves(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	// not notation
	_, err := sc.play(&shellcmd{cmd: "play", args: []string{"4-5"}})
	is.True(err != nil)
	// not adjacent to the center
	_, err = sc.play(&shellcmd{cmd: "play", args: []string{"h0:5"}})
	is.True(err != nil)
	is.Equal(sc.b.SavePosition(), board.StartPosition)
}

func TestGenMovesFromStart(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.genMoves()
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "54 valid moves:"))
}

func TestPositionLoadAndSave(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.position(&shellcmd{cmd: "position"})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "endgame"))

	_, err = sc.position(&shellcmd{cmd: "position", args: []string{"endgame"}})
	is.NoErr(err)

	resp, err = sc.save()
	is.NoErr(err)
	is.Equal(resp.message, board.EndgamePosition)

	_, err = sc.position(&shellcmd{cmd: "position", args: []string{"nope"}})
	is.True(err != nil)
}

func TestLoadErrorKeepsPosition(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	_, err := sc.load(&shellcmd{cmd: "load", args: []string{"h9:zzz"}})
	is.True(err != nil)
	is.Equal(sc.b.SavePosition(), board.StartPosition)
}

func TestSolveEndgame(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := sc.position(&shellcmd{cmd: "position", args: []string{"endgame"}})
	is.NoErr(err)

	resp, err := sc.solve(&shellcmd{cmd: "solve", args: []string{"4"}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "best move h18:1, score -60"))
	// solve reports, it does not play
	is.Equal(sc.b.SavePosition(), board.EndgamePosition)
}

func TestAutoplayFinishesEndgame(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := sc.position(&shellcmd{cmd: "position", args: []string{"endgame"}})
	is.NoErr(err)

	resp, err := sc.autoplay(&shellcmd{
		cmd:     "autoplay",
		options: CmdOptions{"depth": {"4"}, "time": {"5000"}},
	})
	is.NoErr(err)
	is.True(sc.b.IsGameOver())
	is.Equal(len(sc.history), 2)
	is.True(strings.Contains(resp.message, "Scores"))
}

func TestConfigCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.configCmd(&shellcmd{cmd: "config"})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "max-depth"))

	_, err = sc.configCmd(&shellcmd{cmd: "config", args: []string{"max-depth", "9"}})
	is.NoErr(err)
	is.Equal(sc.cfg.GetInt(config.ConfigMaxDepth), 9)

	_, err = sc.configCmd(&shellcmd{cmd: "config", args: []string{"bogus", "1"}})
	is.True(err != nil)

	_, err = sc.configCmd(&shellcmd{cmd: "config", args: []string{"onearg"}})
	is.True(err != nil)
}

func TestHelpTopics(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.help(&shellcmd{cmd: "help"})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "solve"))

	resp, err = sc.help(&shellcmd{cmd: "help", args: []string{"rules"}})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "chain"))

	_, err = sc.help(&shellcmd{cmd: "help", args: []string{"nosuchtopic"}})
	is.True(err != nil)
}

func TestDispatchUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	sig := make(chan os.Signal, 1)

	_, err := sc.standardModeSwitch(&shellcmd{cmd: "frobnicate"}, sig)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "not found"))
}

func TestDispatchExit(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	sig := make(chan os.Signal, 1)

	_, err := sc.standardModeSwitch(&shellcmd{cmd: "exit"}, sig)
	is.True(errors.Is(err, errExiting))
	is.Equal(<-sig, os.Signal(syscall.SIGINT))
}
