// Package motion moves the player. Horizontal motion is a kinematic
// position override checked against the world with raycasts; vertical
// motion is integrated by hand. Neither goes through physics forces.
package motion
