package cli

import (
	"strconv"
	"strings"
)

// CommandKind identifies a session command.
type CommandKind int

const (
	CmdText CommandKind = iota
	CmdSummarize
	CmdQuiz
	CmdHome
	CmdSummary
	CmdPractice
	CmdBack
	CmdRestart
	CmdClear
	CmdLoad
	CmdUp
	CmdDown
	CmdGraph
	CmdHelp
	CmdQuit
	CmdUnknown
)

// Command is a parsed input line.
type Command struct {
	Kind CommandKind
	// Arg is the raw line for CmdText, the note ID for CmdLoad and the
	// command name for CmdUnknown.
	Arg string
}

var commandNames = map[string]CommandKind{
	"summarize": CmdSummarize,
	"s":         CmdSummarize,
	"quiz":      CmdQuiz,
	"home":      CmdHome,
	"summary":   CmdSummary,
	"practice":  CmdPractice,
	"back":      CmdBack,
	"restart":   CmdRestart,
	"clear":     CmdClear,
	"load":      CmdLoad,
	"up":        CmdUp,
	"down":      CmdDown,
	"graph":     CmdGraph,
	"help":      CmdHelp,
	"h":         CmdHelp,
	"quit":      CmdQuit,
	"q":         CmdQuit,
	"exit":      CmdQuit,
}

// ParseCommand turns a line into a Command. Lines starting with ':' are
// commands; everything else is text. A leading "::" escapes the colon, so
// "::param x" is the text ":param x".
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		return Command{Kind: CmdText, Arg: line}
	}
	if strings.HasPrefix(trimmed, "::") {
		return Command{Kind: CmdText, Arg: trimmed[1:]}
	}

	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return Command{Kind: CmdUnknown, Arg: ""}
	}
	name := strings.ToLower(fields[0])
	kind, ok := commandNames[name]
	if !ok {
		return Command{Kind: CmdUnknown, Arg: name}
	}
	cmd := Command{Kind: kind}
	if kind == CmdLoad && len(fields) > 1 {
		cmd.Arg = fields[1]
	}
	return cmd
}

// ParseAnswer reads "<question> <option>" where question is one-based and
// option is a letter (a, b, ...) or a one-based number. It returns
// zero-based indices.
func ParseAnswer(line string) (question, option int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	q, err := strconv.Atoi(fields[0])
	if err != nil || q < 1 {
		return 0, 0, false
	}

	opt := strings.ToLower(fields[1])
	if n, err := strconv.Atoi(opt); err == nil {
		if n < 1 {
			return 0, 0, false
		}
		return q - 1, n - 1, true
	}
	if len(opt) == 1 && opt[0] >= 'a' && opt[0] <= 'z' {
		return q - 1, int(opt[0] - 'a'), true
	}
	return 0, 0, false
}

const helpText = `Commands:
  :summarize      summarize the notes typed so far
  :quiz           generate a practice quiz from the summary
  :home           back to the dashboard
  :summary        open the summary (once available)
  :practice       open the quiz (once available)
  :back           from the quiz back to the summary
  :restart        clear everything and start over
  :clear          clear the notes
  :load ID        load stored notes
  :up / :down     scroll
  :graph          print the view graph (Mermaid)
  :quit           exit
Note lines starting with ':' need a second one, e.g. "::param x".
On the quiz screen answer with "<question> <option>", e.g. "1 b".`
