package shellsim

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path string
	Type NodeCreateRequestType
}

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// FileCreateRequest seeds a file with its initial content
type FileCreateRequest struct {
	NodeRequest
	Content string
}

type DirCreateRequest struct {
	NodeRequest
}

// NewFileRequest is shorthand for a file request at path with content
func NewFileRequest(path, content string) *FileCreateRequest {
	return &FileCreateRequest{
		NodeRequest: NodeRequest{Path: path, Type: FileNodeType},
		Content:     content,
	}
}

// NewDirRequest is shorthand for a directory request at path
func NewDirRequest(path string) *DirCreateRequest {
	return &DirCreateRequest{NodeRequest: NodeRequest{Path: path, Type: DirNodeType}}
}
