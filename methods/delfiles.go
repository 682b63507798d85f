package methods

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// 删除文件夹内的所有文件
func DeleteFiles(dirPath string) error {
	// 读取目录中的所有文件和子目录
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("读取目录失败: %w", err)
	}

	// 遍历删除目录中的所有内容
	for _, entry := range entries {
		path := filepath.Join(dirPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("删除 %s 失败: %w", path, err)
		}
	}

	return nil
}

// FindFileByExt 在目录（含子目录）中查找第一个指定扩展名的文件
// 压缩包解压后用来定位地形数据文件
func FindFileByExt(dir string, exts []string) *string {
	var found *string
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || found != nil || info == nil {
			return nil
		}
		if !info.IsDir() && IsStringInSlice(strings.ToLower(filepath.Ext(path)), exts) {
			p := path
			found = &p
		}
		return nil
	})
	return found
}
