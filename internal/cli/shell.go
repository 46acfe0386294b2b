package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cgpipe/bakenamer/internal/engine"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive rename session",
	Long: `Open an interactive session on a scene file. Undo history and the
automatic low/high alternation persist between commands for as long as the
session is open; both are discarded on exit. The scene file is saved after
every operation that changes it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return runShell(s, os.Stdin)
	},
}

// runShell drives the interactive loop. Errors inside the loop are
// reported and the session keeps going; only I/O failure ends it.
func runShell(s *session, in io.Reader) error {
	PrintSection("bakenamer session")
	PrintLabelValue("Scene", s.path)
	PrintLabelValue("Nodes", fmt.Sprintf("%d", len(s.graph.TransformNodes())))
	PrintInfo("Type 'help' for commands, 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Printf("bakenamer(%s)> ", s.eng.Phase().Suffix())
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if done := s.dispatch(scanner, fields[0], fields[1:]); done {
			return nil
		}
	}
}

// dispatch executes one shell command. Returns true when the session ends.
func (s *session) dispatch(scanner *bufio.Scanner, cmd string, args []string) bool {
	switch cmd {
	case "low":
		s.report(s.eng.RenameToLow())
	case "high":
		s.report(s.eng.RenameToHigh())
	case "suffix":
		if len(args) != 1 {
			PrintWarning("usage: suffix <suffix>")
			return false
		}
		s.report(s.eng.RenameWithSuffix(args[0]))
	case "strip":
		s.report(s.eng.StripSuffixes())
	case "auto":
		s.report(s.eng.AutoRename())
	case "reset":
		s.report(s.eng.ResetAuto())
	case "batch":
		if len(args) != 1 {
			PrintWarning("usage: batch <suffix>")
			return false
		}
		fmt.Printf("rename all %d scene objects with %q? [y/N] ", len(s.graph.TransformNodes()), args[0])
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			PrintInfo("batch cancelled")
			return false
		}
		s.report(s.eng.BatchRename(args[0]))
	case "undo":
		s.report(s.eng.UndoLastRename())
	case "history":
		n := 0
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				PrintWarning("usage: history [n]")
				return false
			}
			n = parsed
		}
		actions := s.eng.RecentHistory(n)
		if len(actions) == 0 {
			PrintEmptyState("no renames recorded")
			return false
		}
		for _, a := range actions {
			PrintInfo(fmt.Sprintf("  #%d  %s -> %s", a.Seq, a.OldName, a.NewName))
		}
	case "clear":
		s.report(s.eng.ClearHistory())
	case "select":
		if len(args) == 0 {
			PrintWarning("usage: select <name>...")
			return false
		}
		if err := s.graph.Select(args...); err != nil {
			PrintError(err.Error())
			return false
		}
		PrintInfo(fmt.Sprintf("selected %s", PrintCount(len(args), "object", "objects")))
		PrintList(args)
	case "deselect":
		s.graph.ClearSelection()
		PrintInfo("selection cleared")
	case "nodes":
		s.printNodes()
	case "set":
		s.setToggle(args)
	case "settings":
		s.printSettings()
	case "save":
		if err := s.save(); err != nil {
			PrintError(err.Error())
			return false
		}
		PrintSuccess(fmt.Sprintf("saved %s", s.path))
	case "help":
		printShellHelp()
	case "quit", "exit":
		return true
	default:
		PrintWarning(fmt.Sprintf("unknown command %q; type 'help'", cmd))
	}
	return false
}

// report prints an engine result and saves the scene when it changed.
// Partial failures save too: the applied prefix is real.
func (s *session) report(res *engine.Result) {
	if res.AffectedCount > 0 {
		if err := s.save(); err != nil {
			PrintError(err.Error())
		}
	}
	for _, r := range res.Renames {
		PrintInfo(fmt.Sprintf("  %s -> %s", r.OldName, r.NewName))
	}
	if !res.OK {
		PrintError(res.Message)
		return
	}
	if res.Message != "" {
		PrintSuccess(res.Message)
	}
}

func (s *session) printNodes() {
	selected := make(map[string]struct{})
	for _, name := range s.graph.SelectionNames() {
		selected[name] = struct{}{}
	}
	for _, n := range s.graph.TransformNodes() {
		marker := " "
		if _, ok := selected[n.Name]; ok {
			marker = "*"
		}
		PrintInfo(fmt.Sprintf("  %s %s", marker, n.Name))
	}
}

func (s *session) setToggle(args []string) {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		PrintWarning("usage: set conflicts|unique|messages on|off")
		return
	}
	value := args[1] == "on"
	settings := s.eng.Settings()
	switch args[0] {
	case "conflicts":
		settings.CheckConflicts = value
	case "unique":
		settings.AutoUniqueNames = value
	case "messages":
		settings.ShowMessages = value
	default:
		PrintWarning("usage: set conflicts|unique|messages on|off")
		return
	}
	s.eng.SetSettings(settings)
	PrintInfo(fmt.Sprintf("%s %s", args[0], args[1]))
}

func (s *session) printSettings() {
	settings := s.eng.Settings()
	PrintLabelValue("conflicts", onOff(settings.CheckConflicts))
	PrintLabelValue("unique", onOff(settings.AutoUniqueNames))
	PrintLabelValue("messages", onOff(settings.ShowMessages))
	PrintLabelValue("next auto suffix", s.eng.Phase().Suffix())
	PrintLabelValue("history entries", fmt.Sprintf("%d", s.eng.HistoryLen()))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func printShellHelp() {
	PrintInfo(`  low | high            tag selection with _low / _high
  suffix <s>            tag selection with a custom suffix
  strip                 remove recognized suffixes from selection
  auto                  alternating low/high tagging; reset restarts at low
  batch <s>             tag every scene object (asks for confirmation)
  undo                  undo the most recent rename
  history [n]           show recent renames; clear drops them all
  select <name>...      replace the selection; deselect clears it
  nodes                 list scene objects (* marks selection)
  set <k> on|off        toggle conflicts | unique | messages
  settings              show current settings
  save                  write the scene file now
  quit                  end the session`)
}
