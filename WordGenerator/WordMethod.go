package WordGenerator

import (
	"fmt"

	"gitee.com/gooffice/gooffice/color"
	"gitee.com/gooffice/gooffice/document"
	"gitee.com/gooffice/gooffice/measurement"
	"gitee.com/gooffice/gooffice/schema/soo/wml"
)

// 插入一级标题
func AddHeading1(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.SetOutlineLvl(1)
	run := para.AddRun()
	run.Properties().SetSize(22)
	run.Properties().SetFontFamily("仿宋")
	run.Properties().SetBold(true)
	run.AddText(text)
	para.SetStyle("标题 1")
	para.Properties().SetHeadingLevel(1)
}

// 插入2级标题
func AddHeading2(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.SetOutlineLvl(2)
	run := para.AddRun()
	run.Properties().SetSize(16)
	run.Properties().SetFontFamily("仿宋")
	run.Properties().SetBold(true)
	run.AddText(text)
	para.SetStyle("标题 2")
	para.Properties().SetHeadingLevel(2)
}

// 插入正文
func AddText(doc *document.Document, text string, iscenter bool) {
	para := doc.AddParagraph()
	if iscenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	run := para.AddRun()
	run.Properties().SetSize(14)

	run.AddText(text)
}

func AddTextBlod(doc *document.Document, text string, iscenter bool) {
	para := doc.AddParagraph()
	if iscenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	run := para.AddRun()
	run.Properties().SetSize(14)
	run.Properties().SetBold(true)
	run.AddText(text)
}

// VolumeRow 方量表格的一行
type VolumeRow struct {
	Name  string
	Value string
}

// 方量成果表格导出
func OutVolumeTable(doc *document.Document, rows []VolumeRow) {
	//插入表格
	table := doc.AddTable()
	table.Properties().SetAlignment(wml.ST_JcTableCenter)
	// width of the page
	table.Properties().SetWidthPercent(100)
	// with thick borers
	borders := table.Properties().Borders()
	borders.SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)
	row := table.AddRow()
	Paragraph := row.AddCell().AddParagraph()
	Paragraph.Properties().SetAlignment(wml.ST_JcCenter)
	run := Paragraph.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(12)
	run.AddText("项目")
	Paragraph = row.AddCell().AddParagraph()
	Paragraph.Properties().SetAlignment(wml.ST_JcCenter)
	run = Paragraph.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(12)
	run.AddText("数值")
	for _, item := range rows {
		row = table.AddRow()
		Paragraph = row.AddCell().AddParagraph()
		Paragraph.Properties().SetAlignment(wml.ST_JcCenter)
		run = Paragraph.AddRun()
		run.Properties().SetSize(12)
		run.AddText(item.Name)
		Paragraph = row.AddCell().AddParagraph()
		Paragraph.Properties().SetAlignment(wml.ST_JcCenter)
		run = Paragraph.AddRun()
		run.Properties().SetSize(12)
		run.AddText(item.Value)
	}
}

// FormatVolume 方量数值统一保留3位小数
func FormatVolume(v float64) string {
	return fmt.Sprintf("%.3fm³", v)
}
