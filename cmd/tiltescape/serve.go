package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-escape/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SSH server",
		Long: `Start an SSH server that lets players connect and play remotely.

Every connection gets its own session with the game picker; scores land
in one shared per-server leaderboard.

The host key comes from --host-key when given, otherwise one is
generated at ~/.tilt-escape/host_key on first start.

Examples:
  tiltescape serve                           # Listen on :23234
  tiltescape serve --ssh :2222               # Listen on port 2222
  tiltescape serve --host-key ./my_host_key  # Use specific host key
  tiltescape serve --db ./scores.db          # Use specific database

Players connect with:
  ssh localhost -p 23234`,
		Run: runServe,
	}

	cmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	cmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.tilt-escape/scores.db", "Path to scores database")
	cmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	return cmd
}

func runServe(_ *cobra.Command, _ []string) {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Tilt Escape SSH server on %s\n", flagSSHAddr)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
