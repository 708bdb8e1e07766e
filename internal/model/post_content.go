package model

// Content 编辑器输出的结构化正文
type Content struct {
	Time    int64   `bson:"time,omitempty" json:"time,omitempty"`
	Blocks  []Block `bson:"blocks" json:"blocks"`
	Version string  `bson:"version,omitempty" json:"version,omitempty"`
}

// Block 正文中的单个内容块 (段落、标题、图片、列表...)
type Block struct {
	ID   string         `bson:"id,omitempty" json:"id,omitempty"`
	Type string         `bson:"type" json:"type"`
	Data map[string]any `bson:"data" json:"data"`
}
