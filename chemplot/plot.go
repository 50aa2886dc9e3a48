/*
 * plot.go, part of gobalance.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	balance "github.com/rmera/gobalance"
)

//Size of the saved plots.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

func basicBarPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func bars(values []float64, width vg.Length, key int) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values(values), width)
	if err != nil {
		return nil, err
	}
	b.Color = sideColor(key)
	b.LineStyle.Width = vg.Length(0)
	return b, nil
}

/*Coefficients plots the balanced coefficients of eq, one bar per compound, reactants
and products in different colors. The plot is saved in filename, and the format is taken
from its extension (png, svg, pdf, ...). Returns an error or nil*/
func Coefficients(eq *balance.Equation, title, filename string) error {
	if eq == nil || eq.Len() == 0 {
		return fmt.Errorf("chemplot.Coefficients: Given empty equation")
	}
	p := basicBarPlot(title, "Coefficient")
	nr := len(eq.Reactants)
	r := make([]float64, nr)
	pr := make([]float64, len(eq.Products))
	for i, c := range eq.Coefficients {
		if i < nr {
			r[i] = float64(c)
		} else {
			pr[i-nr] = float64(c)
		}
	}
	w := vg.Points(20)
	rb, err := bars(r, w, 0)
	if err != nil {
		return fmt.Errorf("chemplot.Coefficients: %w", err)
	}
	pb, err := bars(pr, w, 1)
	if err != nil {
		return fmt.Errorf("chemplot.Coefficients: %w", err)
	}
	pb.XMin = float64(nr)
	p.Add(rb, pb)
	p.Legend.Add("Reactants", rb)
	p.Legend.Add("Products", pb)
	names := make([]string, eq.Len())
	for i := range names {
		names[i] = eq.Term(i)
	}
	p.NominalX(names...)
	return p.Save(Width, Height, filename)
}

/*ElementTotals plots, for each element, the number of atoms on each side of the balanced
equation eq. For a balanced equation both bars of each pair have the same height. The plot
is saved in filename. Returns an error or nil*/
func ElementTotals(eq *balance.Equation, title, filename string) error {
	if eq == nil || eq.Len() == 0 {
		return fmt.Errorf("chemplot.ElementTotals: Given empty equation")
	}
	S := eq.System()
	re, pr := S.Totals(eq.Coefficients)
	p := basicBarPlot(title, "Atoms")
	w := vg.Points(15)
	rb, err := bars(re, w, 0)
	if err != nil {
		return fmt.Errorf("chemplot.ElementTotals: %w", err)
	}
	rb.Offset = -w / 2
	pb, err := bars(pr, w, 1)
	if err != nil {
		return fmt.Errorf("chemplot.ElementTotals: %w", err)
	}
	pb.Offset = w / 2
	p.Add(rb, pb)
	p.Legend.Add("Reactants", rb)
	p.Legend.Add("Products", pb)
	p.NominalX(S.Elements...)
	return p.Save(Width, Height, filename)
}
