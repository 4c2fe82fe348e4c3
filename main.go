// tether is a terminal diagram editor built around drag-to-connect: press on
// a node's connection point, drag to another node, release to create an
// orthogonally routed edge.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tether/config"
	"tether/document"
	"tether/editor"
	"tether/pathfinding"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		dump       = flag.Bool("dump", false, "Print the diagram as JSON and exit")
		validate   = flag.Bool("validate", false, "Check the diagram for structural problems and exit")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc := document.NewDocument(pathfinding.NewDirectRouter(pathfinding.HorizontalFirst))

	path := flag.Arg(0)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := doc.Load(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if *validate {
		errs := doc.Validate()
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, e)
		}
		if len(errs) > 0 {
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", path)
		return
	}

	if *dump {
		data, err := json.MarshalIndent(doc.Diagram(), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	ed := editor.NewEditor(doc, cfg, path)
	if err := ed.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("tether - drag-to-connect diagram editor")
	fmt.Println()
	fmt.Println("Usage: tether [options] [file.json]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Mouse:")
	fmt.Println("  drag from a connection point  create an edge")
	fmt.Println("  drag a node body              move the node")
	fmt.Println("  right-click a node            delete it")
	fmt.Println()
	fmt.Println("Keys: n add node, s save, u undo, r redo, arrows pan, ESC cancel, q quit")
}
