// Package view holds the page model mutated by the view controller: the four
// screen regions, the status label, loader text, error banner, note input,
// summary text, dashboard navigation cards and the rendered quiz cards.
//
// It is the terminal counterpart of a browser DOM. Presenters only read it.
package view
