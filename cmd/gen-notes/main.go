// Command gen-notes writes a small directory of sample study notes for
// "notequiz run --notes-dir".
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	loamAdapter "github.com/aretw0/notequiz/pkg/adapters/loam"
	"gopkg.in/yaml.v3"
)

type sample struct {
	meta loamAdapter.NoteMetadata
	body string
}

var samples = []sample{
	{
		meta: loamAdapter.NoteMetadata{Title: "Goroutines", Tags: []string{"go", "concurrency"}},
		body: `Goroutines are functions that run concurrently with other functions.
The Runtime multiplexes goroutines onto a small number of operating system threads.
Starting a goroutine costs only a few kilobytes of stack, which grows as needed.
Channels let goroutines communicate by sending typed values to each other.
An unbuffered channel blocks the Sender until a Receiver is ready.
The Select statement waits on several channel operations at once.
Leaked goroutines keep their memory alive until the program exits.
`,
	},
	{
		meta: loamAdapter.NoteMetadata{Title: "HTTP Basics", Tags: []string{"web"}},
		body: `HTTP is a stateless request and response protocol.
Every Request names a method such as GET or POST and a target path.
Servers answer with a Status code, headers and an optional body.
Status codes between 400 and 499 signal Client errors.
Status codes between 500 and 599 signal Server failures.
Caching headers let Browsers reuse earlier responses safely.
`,
	},
	{
		meta: loamAdapter.NoteMetadata{Title: "Short Note"},
		body: "Interfaces are satisfied implicitly.\n",
	},
}

func main() {
	targetDir := "notes"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generating sample notes in: %s\n", targetDir)

	for _, s := range samples {
		id := slug(s.meta.Title)
		if err := writeNote(filepath.Join(targetDir, id+".md"), s); err != nil {
			fmt.Printf("Error writing %s: %v\n", id, err)
			os.Exit(1)
		}
	}

	// Read the directory back the way the client does.
	src, err := loamAdapter.Open(targetDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	ids, err := src.List(context.Background())
	if err != nil {
		fmt.Printf("Error listing notes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done. %d notes: %v\n", len(ids), ids)
}

func writeNote(path string, s sample) error {
	front, err := yaml.Marshal(map[string]any{
		"title": s.meta.Title,
		"tags":  s.meta.Tags,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(front)
	buf.WriteString("---\n")
	buf.WriteString(s.body)
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func slug(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
