package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var loadOnce sync.Once

// loadConfig 从仓库根目录的 config/local.yaml 加载测试配置, 各个 Init 方法共用
func loadConfig() {
	loadOnce.Do(func() {
		root, err := repoRoot()
		if err != nil {
			panic(err)
		}
		content, err := os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			panic(err)
		}
		err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		if err != nil {
			panic(err)
		}
	})
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("找不到 go.mod")
		}
		dir = parent
	}
}
