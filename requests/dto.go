package requests

import "github.com/brettbedarf/shellsim"

// NodeRequestDTO is the YAML/JSON representation of one seed tree entry.
//
// Ex.
//
//	- type: dir
//	  path: /home/student/labs
//	- type: file
//	  path: /home/student/notes/readme.txt
//	  content: "Welcome\n"
type NodeRequestDTO struct {
	Type    shellsim.NodeCreateRequestType `yaml:"type" json:"type"`
	Path    string                         `yaml:"path" json:"path"`
	Content *string                        `yaml:"content,omitempty" json:"content,omitempty"` // files only; defaults to empty
}

// SeedDTO is the on-disk seed file layout
type SeedDTO struct {
	Nodes []NodeRequestDTO `yaml:"nodes" json:"nodes"`
}
