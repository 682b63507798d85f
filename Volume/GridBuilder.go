package Volume

// BuildGrid 在范围上铺设等间距正方形采样网格
// 上边界包含在内：步进终点加上 resolution*1e-6 的容差，避免浮点舍入丢掉最后一个采样点，
// 否则地形边缘的方量会被悄悄算小
func BuildGrid(box *BoundingBox2D, resolution float64) (*Grid, error) {
	if resolution <= 0 {
		return nil, ErrInvalidResolution
	}

	epsilon := resolution * 1e-6
	var gridX, gridY []float64
	for x := box.MinX; x <= box.MaxX+epsilon; x += resolution {
		gridX = append(gridX, x)
	}
	for y := box.MinY; y <= box.MaxY+epsilon; y += resolution {
		gridY = append(gridY, y)
	}

	grid := &Grid{GridX: gridX, GridY: gridY}
	if len(gridX) == 0 || len(gridY) == 0 {
		// 退化范围产生空网格，属于合法结果而不是错误，下游按零方量处理
		return grid, nil
	}

	// 行优先展平：y最慢，与Result.DzGrid的重构顺序保持一致
	grid.Points = make([]GridPoint, 0, len(gridX)*len(gridY))
	for _, y := range gridY {
		for _, x := range gridX {
			grid.Points = append(grid.Points, GridPoint{X: x, Y: y})
		}
	}
	return grid, nil
}
