package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the desktop host.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}
