package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/iw2rmb/textcore"
	"github.com/iw2rmb/textcore/config"
)

const sample = "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello, textcore 😀\")\n}\n"

var log = commonlog.GetLogger("textcore.demo")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("textcore-demo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	versionFlag := flags.Bool("version", false, "Print the version and exit")
	configFlag := flags.String("config", "", "Path to a JSON config file (watched for changes)")
	logfileFlag := flags.String("logfile", "", "Path to log file (overrides log_file)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, textcore.Banner("textcore-demo"))
		return 0
	}

	fail := func(err error) int {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.LoadFile(*configFlag); err != nil {
			return fail(err)
		}
	}
	configureLogging(cfg, *logfileFlag)

	name, text := "", sample
	if path := flags.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fail(err)
		}
		name, text = path, string(data)
	}

	m, err := newModel(cfg, name, text)
	if err != nil {
		return fail(err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if *configFlag != "" {
		w, err := config.Watch(*configFlag,
			func(c config.Config) { p.Send(configMsg{cfg: c}) },
			func(err error) { p.Send(configErrMsg{err: err}) },
		)
		if err != nil {
			return fail(err)
		}
		defer w.Close()
	}

	log.Infof("starting %s", textcore.Banner("textcore-demo"))
	if _, err := p.Run(); err != nil {
		return fail(err)
	}
	return 0
}

// configureLogging sends logs to a file when one is configured. Without one
// only critical messages reach stderr, which the alt screen would hide anyway.
func configureLogging(cfg config.Config, override string) {
	path := cfg.LogFile
	if override != "" {
		path = override
	}
	if path == "" {
		commonlog.Configure(-4, nil)
		return
	}
	commonlog.Configure(cfg.LogVerbosity, &path)
}
