// Package model contains the data types shared by tagenv's packages.
package model

import "github.com/blang/semver/v4"

// Environment is a deployment target with its own tag prefix and version
// sequence. Key is implied by the registry mapping and is not serialized.
type Environment struct {
	Key         string `json:"-"`
	Label       string `json:"label"`
	Prefix      string `json:"prefix"`
	Description string `json:"description,omitempty"`
}

// Tag is a tag as reported by the repository, decoded into a version.
type Tag struct {
	Name        string
	Author      string
	RelativeAge string
	Annotation  string
	Version     semver.Version
}

// UnknownAuthor is reported for lightweight tags, which carry no tagger.
const UnknownAuthor = "unknown"
