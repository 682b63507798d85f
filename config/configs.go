package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var DBType string
var DSN string
var DataPath string
var Upload string
var Download string
var MainConfig Config

type Config struct {
	XMLName    xml.Name `xml:"config"`
	MainRouter string   `xml:"MainRouter"`
	DBType     string   `xml:"dbtype"`
	Dbname     string   `xml:"dbname"`
	Host       string   `xml:"host"`
	Port       string   `xml:"port"`
	Username   string   `xml:"user"`
	Password   string   `xml:"password"`
	DataPath   string   `xml:"datapath"`
	Upload     string   `xml:"upload"`
	Download   string   `xml:"download"`
}

func init() {
	// 缺省配置，没有config.xml时也能以sqlite模式启动
	MainRouter = "0.0.0.0:8426"
	DBType = "sqlite"
	DataPath = "./digvolume.db"
	Upload = "./UploadFile"
	Download = "./OutFile"

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	if MainConfig.MainRouter != "" {
		MainRouter = MainConfig.MainRouter
	}
	if MainConfig.DBType != "" {
		DBType = MainConfig.DBType
	}
	if MainConfig.DataPath != "" {
		DataPath = MainConfig.DataPath
	}
	if MainConfig.Upload != "" {
		Upload = MainConfig.Upload
	}
	if MainConfig.Download != "" {
		Download = MainConfig.Download
	}

	switch DBType {
	case "postgres":
		DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)
	case "mysql":
		DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			MainConfig.Username, MainConfig.Password, MainConfig.Host, MainConfig.Port, MainConfig.Dbname)
	}
}
