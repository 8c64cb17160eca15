package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"uxngo/host"
	"uxngo/rom"
	"uxngo/varvara"
)

var hudFlag bool

// runCmd boots a ROM and opens its window.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run a UXN rom",
	Args:  cobra.ExactArgs(1),
	Run:   runUxn,
}

func init() {
	runCmd.Flags().BoolVar(&hudFlag, "hud", false, "overlay CPU/stack state on the background plane")
}

func runUxn(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := rom.Load(path)
	if err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}

	m := varvara.New(data, varvara.DefaultWidth, varvara.DefaultHeight)
	m.Bank.Con.Out = os.Stdout
	m.Boot()

	w := host.NewWindow(m)
	w.HUD = hudFlag
	ebiten.SetWindowSize(m.Screen().Width()*2, m.Screen().Height()*2)
	ebiten.SetWindowTitle("uxngo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil {
		log.Fatalf("uxngo: %v", err)
	}
}
