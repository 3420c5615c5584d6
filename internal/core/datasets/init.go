// Package datasets registers the known dataset schemas with core.
package datasets

import "github.com/JonMunkholm/datasets/internal/core"

func init() {
	core.Register(ICFES())
	core.Register(Student())
}
