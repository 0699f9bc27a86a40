// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-r remote session store address used by the client
//	-d database DSN (PostgreSQL URL or SQLite file path)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-timeout client request timeout (e.g., "10s")
//	-sync-interval background sync period (e.g., "5m")
//	-pool-size number of sync workers
//	-retry-ceiling failed attempts before a pending write is dropped
//	-migration-concurrency parallel uploads during migration
//	-log-file client log file path
//	-headless run the client without the terminal UI
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var remoteAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var syncInterval time.Duration
	var poolSize int
	var retryCeiling int
	var migrationConcurrency int
	var logFile string
	var headless bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&remoteAddress, "r", "", "Remote session store address")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Remote request timeout (e.g., 10s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&poolSize, "pool-size", 0, "Sync worker pool size")
	flag.IntVar(&retryCeiling, "retry-ceiling", 0, "Failed attempts before a pending write is dropped")
	flag.IntVar(&migrationConcurrency, "migration-concurrency", 0, "Parallel uploads during migration")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.BoolVar(&headless, "headless", false, "Run the client without the terminal UI")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogFile:      logFile,
			Headless:     headless,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			SyncInterval:         syncInterval,
			PoolSize:             poolSize,
			RetryCeiling:         retryCeiling,
			MigrationConcurrency: migrationConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
