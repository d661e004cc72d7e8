package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawCatalog is catalog.yaml as loaded.
type RawCatalog struct {
	Commands  []RawCommandDef  `yaml:"commands"`
	Responses []RawResponseDef `yaml:"responses"`
}

// RawCommandDef describes one outbound command.
type RawCommandDef struct {
	Name    string        `yaml:"name"`
	Address string        `yaml:"address"`
	Doc     string        `yaml:"doc"`
	Args    []RawFieldDef `yaml:"args"`
	Reply   string        `yaml:"reply"`   // Response name; makes the command a Query
	Reports []string      `yaml:"reports"` // Response names enabled by the command
	Custom  bool          `yaml:"custom"`  // Type and builder are hand-written
}

// RawResponseDef describes one inbound message.
type RawResponseDef struct {
	Name    string        `yaml:"name"`
	Address string        `yaml:"address"`
	Doc     string        `yaml:"doc"`
	Fields  []RawFieldDef `yaml:"fields"`
	Custom  bool          `yaml:"custom"` // Type and decoder are hand-written
}

// RawFieldDef is a positional argument.
type RawFieldDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "int", "float", "bool", "string"
}

var validTypes = map[string]bool{"int": true, "float": true, "bool": true, "string": true}

// ParseCatalog parses and validates catalog YAML.
func ParseCatalog(data []byte) (*RawCatalog, error) {
	var cat RawCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// LoadCatalog loads and parses catalog YAML from a file.
func LoadCatalog(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func (c *RawCatalog) validate() error {
	responses := make(map[string]bool, len(c.Responses))
	addresses := make(map[string]string, len(c.Responses))
	for _, r := range c.Responses {
		if r.Name == "" || r.Address == "" {
			return fmt.Errorf("response %q: name and address are required", r.Name)
		}
		if responses[r.Name] {
			return fmt.Errorf("response %q defined twice", r.Name)
		}
		if prev, ok := addresses[r.Address]; ok {
			return fmt.Errorf("responses %q and %q share address %s", prev, r.Name, r.Address)
		}
		responses[r.Name] = true
		addresses[r.Address] = r.Name
		if err := validateFields(r.Name, r.Fields); err != nil {
			return err
		}
	}

	commands := make(map[string]bool, len(c.Commands))
	for _, cmd := range c.Commands {
		if cmd.Name == "" || cmd.Address == "" {
			return fmt.Errorf("command %q: name and address are required", cmd.Name)
		}
		if commands[cmd.Name] {
			return fmt.Errorf("command %q defined twice", cmd.Name)
		}
		commands[cmd.Name] = true
		if cmd.Reply != "" && !responses[cmd.Reply] {
			return fmt.Errorf("command %q: unknown reply %q", cmd.Name, cmd.Reply)
		}
		for _, k := range cmd.Reports {
			if !responses[k] {
				return fmt.Errorf("command %q: unknown report %q", cmd.Name, k)
			}
		}
		if err := validateFields(cmd.Name, cmd.Args); err != nil {
			return err
		}
	}
	return nil
}

func validateFields(owner string, fields []RawFieldDef) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !validTypes[f.Type] {
			return fmt.Errorf("%s.%s: unknown type %q", owner, f.Name, f.Type)
		}
		if seen[f.Name] {
			return fmt.Errorf("%s.%s: duplicate field", owner, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
