package Transformer

import (
	"log"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

func GbkToUtf8(s string) string {
	gbkDecoder := simplifiedchinese.GBK.NewDecoder()
	utf8String, _, err := transform.String(gbkDecoder, s)
	if err != nil {
		// 如果解码失败，返回原始字符串
		return s
	}
	return utf8String
}

// DetectEncoding 检测字节流的字符编码
func DetectEncoding(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil {
		log.Printf("编码检测失败: %v", err)
		return "UTF-8"
	}
	return result.Charset
}

// DecodeToUtf8 按检测到的编码将字节流解码为UTF-8文本
// 测量数据常见GBK编码，其余按UTF-8处理
func DecodeToUtf8(data []byte) string {
	charset := DetectEncoding(data)
	switch charset {
	case "GB-18030", "GBK", "GB2312", "Big5":
		return GbkToUtf8(string(data))
	default:
		return string(data)
	}
}
