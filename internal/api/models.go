package api

type GoRequest struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Z     int `json:"z"`
	Speed int `json:"speed"`
}

type CurveRequest struct {
	X1    int `json:"x1"`
	Y1    int `json:"y1"`
	Z1    int `json:"z1"`
	X2    int `json:"x2"`
	Y2    int `json:"y2"`
	Z2    int `json:"z2"`
	Speed int `json:"speed"`
}

type Result struct {
	Result any `json:"result"`
	Code   int `json:"code"`
}
