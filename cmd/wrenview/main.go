// wrenview is a minimal host shell around the rendering pipeline: it opens
// a window, renders a local HTML file into an image, and displays it.
package main

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"wren/pkg/render"
)

const (
	viewWidth  = 1024
	viewHeight = 700
)

func main() {
	a := app.New()
	w := a.NewWindow("wren")
	w.Resize(fyne.NewSize(1024, 768))

	target := image.NewRGBA(image.Rect(0, 0, viewWidth, viewHeight))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter the path of an HTML file and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("page.html")
	pathEntry.OnSubmitted = func(path string) {
		status.SetText("Rendering " + path + "...")
		go func() {
			htmlSrc, err := os.ReadFile(path)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}

			renderTarget := image.NewRGBA(image.Rect(0, 0, viewWidth, viewHeight))
			surface := render.NewSurfaceFor(renderTarget)
			if err := render.Render(string(htmlSrc), "", surface); err != nil {
				// The host paints the fallback: keep the old frame, show
				// the failure in the status line.
				status.SetText("Render error: " + err.Error())
				return
			}

			canvasImg.Image = renderTarget
			canvasImg.Refresh()
			status.SetText("Rendered " + path)
		}()
	}

	top := container.NewVBox(pathEntry, status)
	w.SetContent(container.NewBorder(top, nil, nil, nil, container.NewScroll(canvasImg)))
	w.ShowAndRun()
}
