// Package tagenv manages environment-tagged version tags in a git
// repository. Each environment owns a tag prefix (v, s, d, ...) and an
// independent patch-bumped version sequence.
//
// Related packages: config, model, tag, registry, prompt, runner, vcs,
// vcs/gitcli
package tagenv

import "github.com/jeffrom/tagenv/config"

// Config holds the tool configuration for tagenv. This struct is intended
// for command-line use, so not all of its attributes are applicable to
// every operation.
//
// See "go doc github.com/jeffrom/tagenv/config Config" for more information.
type Config = config.Config

// Version is overridden by go build -X.
var Version = "dev"
