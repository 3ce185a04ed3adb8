package component

// WallComponent marks a static board wall
type WallComponent struct{}

// ColliderComponent marks an entity the ball bounces off
type ColliderComponent struct{}
