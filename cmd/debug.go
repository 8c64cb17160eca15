package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uxngo/rom"
	"uxngo/varvara"
)

// debugCmd is an interactive, text-only debugger: breakpoints,
// single-step, memory dump, stack dump, modeled on gintendo's
// Bus.BIOS console.
var debugCmd = &cobra.Command{
	Use:   "debug `path/to/rom`",
	Short: "load a rom and step it from an interactive console",
	Args:  cobra.ExactArgs(1),
	Run:   runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Print(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

func runDebug(cmd *cobra.Command, args []string) {
	data, err := rom.Load(args[0])
	if err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}

	m := varvara.New(data, varvara.DefaultWidth, varvara.DefaultHeight)
	m.Bank.Con.Out = os.Stdout
	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", m.CPU)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run to completion")
		fmt.Println("(S)tep - step one instruction")
		fmt.Println("(P)C - set program counter")
		fmt.Println("(M)emory - dump a memory range")
		fmt.Println("S(t)ack - show working/return stacks")
		fmt.Println("(Q)uit")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: 0200): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			m.CPU.SetPC(readAddress("Set PC to what address (eg: 0100)?: "))
		case 'q', 'Q':
			return
		case 'r', 'R':
			for {
				if _, atBreak := breaks[m.CPU.PC]; atBreak {
					fmt.Printf("\nhit breakpoint at %04x\n\n", m.CPU.PC)
					break
				}
				if halted := m.CPU.Step(); halted {
					break
				}
			}
		case 's', 'S':
			m.CPU.Step()
		case 't', 'T':
			fmt.Printf("\nW: %s\nR: %s\n\n", &m.CPU.Work, &m.CPU.Ret)
		case 'm', 'M':
			low := readAddress("Low address (eg f00d): ")
			high := readAddress("High address (eg beef): ")
			fmt.Println()

			x := 1
			for i := low; ; i++ {
				fmt.Printf("0x%04x: 0x%02x ", i, m.CPU.Mem.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high {
					break
				}
				x++
			}
			fmt.Printf("\n\n")
		}
	}
}
