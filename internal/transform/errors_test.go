package transform

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"header not found",
			&HeaderNotFoundError{Expected: []string{"项号", "商品编码"}},
			"未找到匹配的表头: 项号, 商品编码",
		},
		{
			"missing sheet",
			&MissingSheetError{Sheet: "面单", Available: []string{"Sheet1"}},
			"未找到工作表: 面单",
		},
		{
			"missing column",
			&MissingColumnError{Column: "单价"},
			"缺少必需列: 单价",
		},
		{
			"read failure",
			&ReadError{Path: "a.xlsx", Err: errors.New("zip: not a valid zip file")},
			"读取失败: zip: not a valid zip file",
		},
		{
			"write failure",
			&WriteError{Path: "a_transformed.xlsx", Err: errors.New("permission denied")},
			"写入失败: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReadWriteErrorsUnwrap(t *testing.T) {
	readErr := &ReadError{Path: "a.xlsx", Err: fs.ErrNotExist}
	if !errors.Is(readErr, fs.ErrNotExist) {
		t.Error("ReadError should expose its cause to errors.Is")
	}

	writeErr := &WriteError{Path: "b.xlsx", Err: fs.ErrPermission}
	if !errors.Is(writeErr, fs.ErrPermission) {
		t.Error("WriteError should expose its cause to errors.Is")
	}
}
