// Copyright 2016 The OpenPNM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/dgupta599/OpenPNM/perc"
)

// PlotCurve plots a drainage curve
//  args -- plot arguments; e.g. "'b*-'". if args == "", "'b.-'" is used
func PlotCurve(c *perc.Curve, args, label string) {
	if args == "" {
		args = "'b.-'"
	}
	plt.Plot(c.Pc, c.Sn, io.Sf("%s, label='%s', clip_on=0", args, label))
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.AxisYrange(0, 1)
	plt.Cross()
	plt.Gll("$p_c$", "$s_{nw}$", "")
	if show {
		plt.Show()
	}
}
