// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

func (c *Client) printJSON(title string, message interface{}) {

	if !c.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: JSON error: %s\n", title, err)
		return
	}

	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
