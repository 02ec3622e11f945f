package geo

var CloseShape = closeShape
