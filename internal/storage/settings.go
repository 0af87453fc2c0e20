package storage

import (
	"fmt"
	"strings"
)

// setting 是一项后端配置及其环境变量名
type setting struct {
	env   string
	value string
}

// requireSettings 校验必填配置，一次性报告全部缺失项
func requireSettings(backend string, settings ...setting) error {
	var missing []string
	for _, s := range settings {
		if strings.TrimSpace(s.value) == "" {
			missing = append(missing, s.env)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("storage: %s backend missing %s", backend, strings.Join(missing, ", "))
}
