package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/schedule-monitor/internal/web"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator as a web form",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8484)")
}

func runServe(cmd *cobra.Command, args []string) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	port := cfg.Serve.Port
	if servePort > 0 {
		port = servePort
	}

	gin.SetMode(gin.ReleaseMode)
	handler := web.NewHandler(rules, log)
	srv := web.NewServer(port, handler.InitRoutes())

	printListenAddrs(cmd, port)
	log.Infow("server started", "addr", srv.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return <-errCh
}

// printListenAddrs prints the loopback URL plus one per IPv4 interface.
func printListenAddrs(cmd *cobra.Command, port int) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Listening on:")
	fmt.Fprintf(w, "  http://127.0.0.1:%d/\n", port)

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Debugw("listing network interfaces failed", "err", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			log.Debugw("listing interface addresses failed", "iface", iface.Name, "err", err)
			continue
		}
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(w, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(w)
}
