package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Care Portals API
// @version 1.0
// @description Portales de demo: adopción de mascotas y bienestar estudiantil.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

var rootCmd = &cobra.Command{
	Use:   "portals",
	Short: "Care portals demo server",
	Long: `Sirve los dos portales de demo (pet-adoption y mental-health)
como una API JSON: sesiones, navegación de páginas y formularios multi-paso.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
