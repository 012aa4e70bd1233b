package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/checklists/internal/model"
)

// Seed files are YAML (JSON is accepted too, being a YAML subset). They are
// only ever read at startup; edits made in the app are not written back.
//
//	checklists:
//	  - name: Groceries
//	    icon: shopping
//	    items:
//	      - text: Milk
//	      - text: Bread
//	        checked: true

type fileChecklist struct {
	Name  string       `yaml:"name"`
	Icon  string       `yaml:"icon,omitempty"`
	Items []model.Item `yaml:"items"`
}

type file struct {
	Checklists []fileChecklist `yaml:"checklists"`
}

// Load reads checklists from path. An empty path yields the demo set.
func Load(path string) ([]model.Checklist, error) {
	if strings.TrimSpace(path) == "" {
		return Demo(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("seed file not found: %s", path)
		}
		return nil, fmt.Errorf("read seed: %w", err)
	}
	lists, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return lists, nil
}

// Decode parses a seed document.
func Decode(r io.Reader) ([]model.Checklist, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Checklist{}, nil
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	out := make([]model.Checklist, 0, len(f.Checklists))
	for i, fc := range f.Checklists {
		name := strings.TrimSpace(fc.Name)
		if name == "" {
			return nil, fmt.Errorf("checklist %d: %w", i+1, model.ErrBlankName)
		}
		icon := model.DefaultIcon
		if strings.TrimSpace(fc.Icon) != "" {
			ic, err := model.ParseIcon(fc.Icon)
			if err != nil {
				return nil, fmt.Errorf("checklist %q: %w", name, err)
			}
			icon = ic
		}
		items := make([]model.Item, 0, len(fc.Items))
		for _, it := range fc.Items {
			if it.Blank() {
				continue
			}
			items = append(items, model.Item{Text: strings.TrimSpace(it.Text), Checked: it.Checked})
		}
		out = append(out, model.Checklist{Name: name, Icon: icon, Items: items})
	}
	return out, nil
}

// Encode writes lists in the seed file format.
func Encode(w io.Writer, lists []model.Checklist) error {
	f := file{Checklists: make([]fileChecklist, 0, len(lists))}
	for _, l := range lists {
		items := l.Items
		if items == nil {
			items = []model.Item{}
		}
		f.Checklists = append(f.Checklists, fileChecklist{
			Name:  l.Name,
			Icon:  l.Icon.String(),
			Items: items,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
