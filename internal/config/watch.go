package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
)

// Watch reloads the config file at path whenever it changes and hands
// the result to onChange. onChange runs on the watcher goroutine. The
// returned function stops watching.
func Watch(path string, onChange func(*Config, error)) (unwatch func(), err error) {
	f := file.Provider(path)
	err = f.Watch(func(_ any, err error) {
		if err != nil {
			onChange(nil, fmt.Errorf("watch %s: %w", path, err))
			return
		}
		onChange(Load(path))
	})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return func() { _ = f.Unwatch() }, nil
}
