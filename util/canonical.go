// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/kittyd/fault"
)

// Connection - a canonical IP address and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse host:port where host must be a numeric address
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIPAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return nil, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   IP,
		port: numericPort,
	}
	return c, nil
}

// CanonicalIPandPort - address with an optional scheme prefix
//
// the boolean is true for IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - the address without a prefix
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}

// CanonicalIPandPort - make the IP:Port canonical
func CanonicalIPandPort(hostPort string) (string, error) {
	c, err := NewConnection(hostPort)
	if nil != err {
		return "", err
	}
	return c.String(), nil
}
