package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/shellsim"
	"gopkg.in/yaml.v3"
)

// Seed is the initial tree of a session, split by node type
type Seed struct {
	Dirs  []*shellsim.DirCreateRequest
	Files []*shellsim.FileCreateRequest
}

// DefaultSeed returns the tree a fresh session starts with
func DefaultSeed() *Seed {
	return &Seed{
		Dirs: []*shellsim.DirCreateRequest{
			shellsim.NewDirRequest("/home/student/notes"),
			shellsim.NewDirRequest("/home/student/labs"),
			shellsim.NewDirRequest("/etc"),
			shellsim.NewDirRequest("/var/log"),
			shellsim.NewDirRequest("/tmp"),
		},
		Files: []*shellsim.FileCreateRequest{
			shellsim.NewFileRequest("/home/student/notes/readme.txt", "Welcome to the shell simulator\n"),
		},
	}
}

// UnmarshalSeed decodes a seed document. Format is "yaml" or "json".
func UnmarshalSeed(data []byte, format string) (*Seed, error) {
	var dto SeedDTO
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown seed format: %s", format)
	}
	return convertSeedDTO(dto)
}

// LoadSeedFile reads a seed tree from a .yaml, .yml or .json file
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return UnmarshalSeed(data, "yaml")
	case ".json":
		return UnmarshalSeed(data, "json")
	default:
		return nil, fmt.Errorf("unknown seed file extension: %s", path)
	}
}

func convertSeedDTO(dto SeedDTO) (*Seed, error) {
	seed := &Seed{}
	for i, n := range dto.Nodes {
		if n.Path == "" {
			return nil, fmt.Errorf("seed node %d: missing path", i)
		}
		switch n.Type {
		case shellsim.DirNodeType:
			if n.Content != nil {
				return nil, fmt.Errorf("seed node %d (%s): directories cannot have content", i, n.Path)
			}
			seed.Dirs = append(seed.Dirs, shellsim.NewDirRequest(n.Path))
		case shellsim.FileNodeType:
			seed.Files = append(seed.Files, shellsim.NewFileRequest(n.Path, valueOrDefault(n.Content, "")))
		default:
			return nil, fmt.Errorf("seed node %d (%s): unknown node type %q", i, n.Path, n.Type)
		}
	}
	return seed, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
