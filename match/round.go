package match

import "math"

// Serve puts a waiting ball into play with a fresh random direction
func Serve(s State, r Source) State {
	s.Ball.Dir = RandomUnit(r)
	s.Phase = InPlay
	s.Rally = 0
	return s
}

// Idle places a waiting ball on its bobbing path. The position depends only
// on total, so equal times give equal positions.
func Idle(b Ball, c Config, total float64) Ball {
	b.Pos.Y = c.FieldHeight/2 + c.IdleAmplitude()*math.Sin(c.IdleFrequency*total)
	return b
}

// Goal reports the side that scored if the ball has reached either end of the
// field. Reaching the left end scores for Right and vice versa.
func Goal(b Ball, c Config) (Side, bool) {
	switch {
	case b.Pos.X-b.Radius <= 0:
		return Right, true
	case b.Pos.X+b.Radius >= c.FieldWidth:
		return Left, true
	}
	return Left, false
}

// Award credits a point to scorer and resets the field for the next serve.
// Scores carry over; positions, direction and rally do not.
func Award(s State, scorer Side) State {
	left, right := s.Left.Score, s.Right.Score
	if scorer == Left {
		left++
	} else {
		right++
	}

	s.Left = newPaddle(s.Config, Left, left)
	s.Right = newPaddle(s.Config, Right, right)
	s.Ball = newBall(s.Config)
	s.Phase = AwaitingServe
	s.Rally = 0
	return s
}
