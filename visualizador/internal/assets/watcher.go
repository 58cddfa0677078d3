package assets

import (
	"os"
	"path/filepath"

	"LumenForge/shared/scene"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observa os arquivos dos shaders e recarrega a fonte quando eles
// mudam. Os eventos só são consumidos em Poll, na thread de renderização.
type Watcher struct {
	fs     *fsnotify.Watcher
	byPath map[string][]*scene.Shader
}

// NewWatcher observa as pastas dos shaders vindos de arquivo; shaders
// internos são ignorados.
func NewWatcher(shaders []*scene.Shader) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fw, byPath: make(map[string][]*scene.Shader)}
	dirs := make(map[string]bool)
	for _, sh := range shaders {
		if sh.Path == "" || sh.Source == "" {
			continue
		}
		if _, err := os.Stat(sh.Path); err != nil {
			continue
		}
		abs, err := filepath.Abs(sh.Path)
		if err != nil {
			continue
		}
		w.byPath[abs] = append(w.byPath[abs], sh)
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	zap.S().Infof("[Assets] Observando %d shaders em %d pastas", len(w.byPath), len(dirs))
	return w, nil
}

// Poll drena os eventos pendentes sem bloquear e devolve os shaders
// recarregados. Uma leitura que falha mantém a fonte anterior.
func (w *Watcher) Poll() []*scene.Shader {
	changed := make(map[string]bool)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return w.reload(changed)
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if abs, err := filepath.Abs(ev.Name); err == nil {
					if _, known := w.byPath[abs]; known {
						changed[abs] = true
					}
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return w.reload(changed)
			}
			zap.S().Warnf("[Assets] Erro do watcher: %v", err)
		default:
			return w.reload(changed)
		}
	}
}

func (w *Watcher) reload(changed map[string]bool) []*scene.Shader {
	var out []*scene.Shader
	for _, path := range sortedNames(changed) {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			// editores costumam truncar antes de gravar
			continue
		}
		src := string(data)
		for _, sh := range w.byPath[path] {
			if sh.Source == src {
				continue
			}
			sh.Source = src
			sh.Version++
			out = append(out, sh)
			zap.S().Infof("[Assets] Shader %q recarregado (versão %d)", sh.Name, sh.Version)
		}
	}
	return out
}

// Watched diz quantos arquivos estão sendo observados.
func (w *Watcher) Watched() int { return len(w.byPath) }

func (w *Watcher) Close() error {
	return w.fs.Close()
}
