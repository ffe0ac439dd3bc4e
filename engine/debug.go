package engine

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将排布结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(canvas *Canvas, path string) error {
	if canvas == nil {
		return nil
	}
	data, err := json.MarshalIndent(canvas, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
