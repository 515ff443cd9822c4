package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hiveden/hwinventory/internal/hw"

	"gopkg.in/yaml.v2"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders snap to w in the given format.
func Write(w io.Writer, snap hw.HardwareSnapshot, format string) error {
	var data []byte
	var err error

	switch strings.ToLower(format) {
	case FormatText, "":
		data = text(snap)
	case FormatJSON:
		data, err = json.MarshalIndent(snap, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(&snap)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// ExportFile writes the rendered snapshot to filePath.
func ExportFile(filePath string, snap hw.HardwareSnapshot, format string) error {
	var buf bytes.Buffer
	if err := Write(&buf, snap, format); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

func text(snap hw.HardwareSnapshot) []byte {
	sections := []struct {
		title string
		value string
	}{
		{"CPU", snap.CPU},
		{"RAM", snap.RAM},
		{"Storage", snap.Storage},
		{"GPU", snap.GPU},
		{"Network", snap.Network},
		{"TPM", snap.TPM},
		{"Motherboard", snap.Motherboard},
	}

	var b bytes.Buffer
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n", s.title)
		if s.value == "" {
			continue
		}
		for _, line := range strings.Split(s.value, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.Bytes()
}
