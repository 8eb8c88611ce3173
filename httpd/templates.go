package httpd

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// 模板文件数量很少，32个缓存条目绰绰有余
const templateCacheSize = 32

// Templates 存放HTML响应主体的模板目录。
// 目录路径在构造Server时注入而不是写成包级常量，测试可以换成临时目录。
// Load的结果带LRU缓存，同一个文件不会反复读盘。
type Templates struct {
	root  string
	cache *lru.Cache[string, []byte]
}

// NewTemplates 创建root目录上的模板存取器。
func NewTemplates(root string) *Templates {
	cache, err := lru.New[string, []byte](templateCacheSize)
	if err != nil {
		panic(err)
	}
	return &Templates{
		root:  root,
		cache: cache,
	}
}

// Load 读取名为name的模板文件的全部内容。
func (t *Templates) Load(name string) ([]byte, error) {
	if content, ok := t.cache.Get(name); ok {
		return content, nil
	}

	content, err := os.ReadFile(filepath.Join(t.root, name))
	if err != nil {
		return nil, fmt.Errorf("cannot load the template %q: %w", name, err)
	}

	t.cache.Add(name, content)
	return content, nil
}
