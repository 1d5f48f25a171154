// Command mrdpdump receives an MRDP stream from a UDP or multicast
// address and writes the reassembled byte stream to stdout or a file.
//
// Usage:
//
//	mrdpdump -addr 239.1.2.3:5000
//	mrdpdump -config receiver.yaml
//
// The YAML config mirrors the receiver's tunables:
//
//	address: "239.1.2.3:5000"
//	output: "capture.ts"
//	socket_timeout_millis: 8000
//	packet_timeout_millis: 600
//	max_packet_size: 2000
//	window_capacity: 100
//	report_threshold: 100
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mrdp-go/mrdp"
	"github.com/mrdp-go/mrdp/transport"
)

type config struct {
	Address             string `yaml:"address"`
	Output              string `yaml:"output"`
	SocketTimeoutMillis int    `yaml:"socket_timeout_millis"`
	PacketTimeoutMillis int    `yaml:"packet_timeout_millis"`
	MaxPacketSize       int    `yaml:"max_packet_size"`
	WindowCapacity      int    `yaml:"window_capacity"`
	ReportThreshold     int    `yaml:"report_threshold"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address host:port, overrides the config file")
	flag.Parse()

	var cfg config
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			logrus.WithError(err).Fatal("Loading config failed")
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Address = *addr
	}
	if cfg.Address == "" {
		logrus.Fatal("No listen address given, use -addr or a config file")
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			logrus.WithError(err).Fatal("Creating output file failed")
		}
		defer f.Close()
		out = f
	}

	socketTimeout := transport.DefaultSocketTimeout
	if cfg.SocketTimeoutMillis != 0 {
		socketTimeout = time.Duration(cfg.SocketTimeoutMillis) * time.Millisecond
	}

	source, err := transport.Listen(cfg.Address, socketTimeout)
	if err != nil {
		logrus.WithError(err).Fatal("Opening UDP source failed")
	}
	defer source.Close()

	recv, err := mrdp.NewReceiver(source, mrdp.Config{
		MaxPacketSize:   cfg.MaxPacketSize,
		PacketTimeout:   time.Duration(cfg.PacketTimeoutMillis) * time.Millisecond,
		WindowCapacity:  cfg.WindowCapacity,
		ReportThreshold: cfg.ReportThreshold,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Creating receiver failed")
	}
	if err := recv.Open(); err != nil {
		logrus.WithError(err).Fatal("Opening receiver failed")
	}
	defer recv.Close()

	n, err := io.Copy(out, recv)
	logrus.WithFields(logrus.Fields{
		"bytes": n,
		"error": err,
	}).Info("Stream ended")
}
