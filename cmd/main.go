package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	getAvailableSlotsUC "github.com/m04kA/MediCare-Portal/internal/usecase/get_available_slots"
)

const defaultConfigPath = "config.toml"

func main() {
	rootCmd := &cobra.Command{
		Use:           "medicare-portal",
		Short:         "MediCare appointment portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Path to TOML configuration file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(slotsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return defaultConfigPath
	}
	return path
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath(cmd))
		},
	}
}

func runServer(cfgPath string) error {
	a, err := newApp(context.Background(), cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, log := a.cfg, a.log
	log.Info("Starting MediCare-Portal...")
	log.Info("Configuration loaded from %s", cfgPath)

	// Восстанавливаем сессию в фоне: guard ждёт Ready
	go func() {
		if err := a.store.Rehydrate(context.Background()); err != nil {
			log.Warn("Session rehydration finished with error: %v", err)
		}
	}()

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      a.router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("Received signal %v, shutting down server...", sig)
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the persisted session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted session after rehydration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, configPath(cmd))
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Rehydrate(ctx); err != nil {
				a.log.Warn("Session rehydration finished with error: %v", err)
			}

			snap := a.store.Snapshot()
			out := struct {
				IsAuthenticated bool        `json:"isAuthenticated"`
				HasToken        bool        `json:"hasToken"`
				User            interface{} `json:"user"`
			}{
				IsAuthenticated: snap.IsAuthenticated,
				HasToken:        snap.HasToken(),
				User:            snap.User,
			}
			return printJSON(cmd, out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, configPath(cmd))
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %q cleared\n", a.persister.Key())
			return nil
		},
	})

	return cmd
}

func slotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print bookable hours for a doctor on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doctorID, _ := cmd.Flags().GetString("doctor")
			dateStr, _ := cmd.Flags().GetString("date")

			req := &getAvailableSlotsUC.Request{DoctorID: doctorID}
			if dateStr != "" {
				date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateStr, err)
				}
				req.Date = &date
			}

			a, err := newApp(ctx, configPath(cmd))
			if err != nil {
				return err
			}
			defer a.Close()

			// Нужен токен, если API требует авторизацию для /doctors/{id}
			if err := a.store.Rehydrate(ctx); err != nil {
				a.log.Warn("Session rehydration finished with error: %v", err)
			}

			resp, err := getAvailableSlotsUC.NewUseCase(a.api, a.log).Execute(ctx, req)
			if err != nil {
				return err
			}

			slots := make([]string, 0, len(resp.Slots))
			for _, s := range resp.Slots {
				slots = append(slots, s.String())
			}
			return printJSON(cmd, map[string]interface{}{
				"doctorId": resp.DoctorID,
				"fallback": resp.Fallback,
				"slots":    slots,
			})
		},
	}
	cmd.Flags().String("doctor", "", "Doctor ID; empty uses the default 09:00-21:00 window")
	cmd.Flags().String("date", "", "Date in YYYY-MM-DD; empty prints no slots")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
