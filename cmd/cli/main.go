// Command cli is the interactive single-character command driver from
// spec.md §6, grounded in the teacher project's cmd/client/main.go REPL
// shape (a loop reading one line, splitting on whitespace, dispatching on
// the first token) but upgraded to github.com/peterh/liner for line editing
// and history, the way the haruDB reference repository uses liner for the
// same concern in its own database console.
//
// By default the CLI drives an in-process *bptree.Tree directly; with
// -remote it instead drives a pkg/client connection to a running cmd/server.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"bplustree/internal/bptree"
	"bplustree/pkg/client"
)

const helpText = `commands:
  i <key> <value>   insert value under key
  d <key>           delete key
  f <key>           find key and print its value
  p <key>           find key and print its value (alias of f)
  l                 print the leaf chain, in order
  t                 print the tree, level by level
  v                 toggle verbose node-identity output
  x                 destroy the tree (drop every record)
  q                 quit
  ?                 print this help text`

// driver is the thing cmd/cli commands act on — either a local tree or a
// remote connection, so the REPL loop below does not need to know which.
type driver interface {
	Insert(key []byte, value int) error
	Find(key []byte) (int, bool, error)
	Delete(key []byte) error
	Destroy() error
}

type localDriver struct {
	tree *bptree.Tree
}

func (d *localDriver) Insert(key []byte, value int) error {
	d.tree.InsertKey(key, value)
	return nil
}

func (d *localDriver) Find(key []byte) (int, bool, error) {
	rec, ok := d.tree.FindKey(key)
	if !ok {
		return 0, false, nil
	}
	return rec.Value, true, nil
}

func (d *localDriver) Delete(key []byte) error {
	d.tree.DeleteKey(key)
	return nil
}

func (d *localDriver) Destroy() error {
	d.tree.Destroy()
	return nil
}

type remoteDriver struct {
	c *client.Client
}

func (d *remoteDriver) Insert(key []byte, value int) error { return d.c.Insert(key, value) }
func (d *remoteDriver) Find(key []byte) (int, bool, error) { return d.c.Find(key) }
func (d *remoteDriver) Delete(key []byte) error            { return d.c.Delete(key) }
func (d *remoteDriver) Destroy() error                     { return d.c.Destroy() }

func main() {
	order := flag.Int("order", bptree.DefaultOrder, "tree branching order (local mode only)")
	keyLength := flag.Int("key-length", bptree.DefaultKeyLength, "nominal key width in bytes")
	remoteAddr := flag.String("remote", "", "address of a cmd/server instance to drive instead of an in-process tree")
	flag.Parse()

	tree := bptree.New(bptree.Config{Order: *order, KeyLength: *keyLength})

	var d driver
	if *remoteAddr != "" {
		c := client.New(*remoteAddr)
		if err := c.Connect(); err != nil {
			fmt.Fprintf(os.Stderr, "cli: %v\n", err)
			os.Exit(1)
		}
		defer c.Close()
		d = &remoteDriver{c: c}
	} else {
		d = &localDriver{tree: tree}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println(helpText)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "cli: %v\n", err)
			break
		}
		line.AppendHistory(input)

		if !dispatch(os.Stdout, d, tree, strings.TrimSpace(input)) {
			break
		}
	}
}

// dispatch runs one command line, returning false if the REPL should exit.
func dispatch(w io.Writer, d driver, tree *bptree.Tree, input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return false

	case "?", "help":
		fmt.Fprintln(w, helpText)

	case "i", "insert":
		key, value, err := parseKeyValue(tree, fields)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		if err := d.Insert(key, value); err != nil {
			fmt.Fprintln(w, errors.Wrap(err, "insert"))
		}

	case "d", "delete":
		key, err := parseKey(tree, fields)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		if err := d.Delete(key); err != nil {
			fmt.Fprintln(w, errors.Wrap(err, "delete"))
		}

	case "f", "p", "find":
		key, err := parseKey(tree, fields)
		if err != nil {
			fmt.Fprintln(w, err)
			return true
		}
		value, ok, err := d.Find(key)
		if err != nil {
			fmt.Fprintln(w, errors.Wrap(err, "find"))
			return true
		}
		if !ok {
			fmt.Fprintf(w, "key %s not found\n", fields[1])
			return true
		}
		fmt.Fprintf(w, "key %s, value %d\n", fields[1], value)

	case "l", "leaves":
		if _, remote := d.(*remoteDriver); remote {
			fmt.Fprintln(w, "leaf-chain printing is local-only; netproto exposes insert/find/delete/destroy, not traversal")
			return true
		}
		tree.PrintLeaves(w)

	case "t", "tree":
		if _, remote := d.(*remoteDriver); remote {
			fmt.Fprintln(w, "tree printing is local-only; netproto exposes insert/find/delete/destroy, not traversal")
			return true
		}
		tree.PrintTree(w)

	case "v", "verbose":
		tree.SetVerbose(!tree.Verbose())

	case "x", "destroy":
		if err := d.Destroy(); err != nil {
			fmt.Fprintln(w, errors.Wrap(err, "destroy"))
		}

	default:
		fmt.Fprintf(w, "unrecognized command %q; type ? for help\n", fields[0])
	}
	return true
}

func parseKey(tree *bptree.Tree, fields []string) ([]byte, error) {
	if len(fields) < 2 {
		return nil, errors.New("usage: <cmd> <key>")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid key %q", fields[1])
	}
	return tree.EncodeKey(n), nil
}

func parseKeyValue(tree *bptree.Tree, fields []string) ([]byte, int, error) {
	if len(fields) < 3 {
		return nil, 0, errors.New("usage: i <key> <value>")
	}
	key, err := parseKey(tree, fields)
	if err != nil {
		return nil, 0, err
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, 0, errors.Wrapf(err, "invalid value %q", fields[2])
	}
	return key, value, nil
}
