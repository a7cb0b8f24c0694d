package config

import (
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Token   string `toml:"token" mapstructure:"token"`
	Host    string `toml:"host" mapstructure:"host"`
	Port    string `toml:"port" mapstructure:"port"`
	Libonnx string `toml:"libonnx" mapstructure:"libonnx"`

	ModelUrl       string `toml:"model_url" mapstructure:"model_url"`
	LabelsUrl      string `toml:"labels_url" mapstructure:"labels_url"`
	ModelDir       string `toml:"model_dir" mapstructure:"model_dir"`
	ModelFileName  string `toml:"model_file_name" mapstructure:"model_file_name"`
	LabelsFileName string `toml:"labels_file_name" mapstructure:"labels_file_name"`

	InputSize  int  `toml:"input_size" mapstructure:"input_size"`
	TopK       int  `toml:"top_k" mapstructure:"top_k"`
	Normalize  bool `toml:"normalize" mapstructure:"normalize"`
	WarmupBoot bool `toml:"warmup_on_boot" mapstructure:"warmup_on_boot"`
}

var (
	cfg = Config{
		Token:          "",
		Host:           "0.0.0.0",
		Port:           "8093",
		ModelUrl:       "https://github.com/onnx/models/raw/main/validated/vision/classification/mobilenet/model/mobilenetv2-12.onnx",
		LabelsUrl:      "https://storage.googleapis.com/download.tensorflow.org/data/ImageNetLabels.txt",
		ModelDir:       "models",
		ModelFileName:  "mobilenetv2.onnx",
		LabelsFileName: "labels.txt",
		InputSize:      224,
		TopK:           3,
		Normalize:      true,
		WarmupBoot:     true,
	}
	loadOnce sync.Once
)

func C() Config {
	loadOnce.Do(func() {
		if _, err := os.Stat("config.toml"); err == nil {
			data, err := os.ReadFile("config.toml")
			if err != nil {
				panic(err)
			}
			if err := toml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
	})
	return cfg
}
